// Package logfiles reads log directories written by the console package.
//
// The console names its files <unix-ms>.log, one per Console instance. This
// package lists those files (oldest first), reads their records back, and
// prunes old files, keeping only the newest N. Files that don't match the
// naming scheme are ignored rather than treated as errors, so a log
// directory can hold unrelated files.
package logfiles
