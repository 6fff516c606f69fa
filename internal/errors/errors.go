package errors

import "errors"

// Log inspection errors indicate issues locating or reading log files.
var (
	// ErrNoLogFiles indicates the log directory contains no log files.
	ErrNoLogFiles = errors.New("no log files found")

	// ErrLogFileNotFound indicates the named log file could not be located.
	ErrLogFileNotFound = errors.New("log file not found")
)

// Configuration errors indicate issues with the user configuration.
var (
	// ErrConfigNotFound indicates the configuration has not been initialized.
	ErrConfigNotFound = errors.New("configuration has not been initialized")

	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration file is invalid")
)
