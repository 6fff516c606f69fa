// Package console provides color-coded terminal output with plain-text file
// logging.
//
// A Console is bound at construction to a log directory and a timestamped
// log file within it (<unix-ms>.log). Every call prints to the terminal,
// appends one record to the log file, or both, depending on how the call is
// gated:
//
//	c.Warn("disk space low")        // always terminal + file, "WARNING: " prefix
//	c.Error("disk full")            // always terminal + file, "ERROR: " prefix
//	c.Out("hello")                  // always terminal, file if logging enabled
//	c.OutColor(console.CYA, "hi")   // same, in cyan
//	c.Log("hello")                  // terminal if enabled, file if logging enabled
//	c.LogWith(console.Message{Label: "net"}, "dial ok")
//
// # Labels
//
// A Log call tagged with a label is emitted only if that label has been
// registered with AddLabel; otherwise it is dropped entirely. Untagged calls
// are never label-gated. This lets a caller sprinkle labeled Log calls
// through a codebase and switch subsystems on selectively.
//
// # File format
//
// Records are the space-joined call arguments, newline-terminated, with no
// timestamp or structure beyond the fixed "WARNING:"/"ERROR:" prefixes of
// the level calls. The timestamp lives in the filename. Colors never reach
// the file.
//
// # Colors
//
// Twelve named colors are supported: GRE, RED, BLU, YEL, MAG, CYA and their
// bold variants BGRE, BRED, BBLU, BYEL, BMAG, BCYA. Unknown names fail with
// ErrInvalidColor rather than printing unstyled. Styling honors fatih/color's
// global detection, so NO_COLOR and non-TTY output disable it.
//
// # Concurrency
//
// A Console is safe for concurrent use. Each file append is an
// open-append-close cycle under an internal mutex, so records from
// concurrent callers never interleave.
package console
