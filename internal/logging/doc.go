// Package logger provides diagnostic logging for prizm CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown.
//
// A Logger may wrap a console.Console, in which case diagnostics go through
// the console's colored output and are appended to its log file. Without
// one, diagnostics print to stdout/stderr directly. Commands create a
// Logger in their PersistentPreRun and pass it to internal functions.
package logger
