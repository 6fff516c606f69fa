// Package errors defines sentinel errors for the prizm CLI.
//
// Errors are matched with errors.Is and wrapped with fmt.Errorf("...: %w")
// at call sites to add context. The console library defines its own errors
// (console.ErrDirectory, console.ErrLogWrite, console.ErrInvalidColor) so
// library users don't depend on this internal package.
package errors
