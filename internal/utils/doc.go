// Package utils provides filesystem and terminal helpers shared by the
// console library and the CLI.
package utils
