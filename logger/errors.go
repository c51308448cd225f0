package logger

import "errors"

var (
	// ErrUnknownLevel indicates a level name that is not error, warning or info.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownType indicates a record type name that is not recognized.
	ErrUnknownType = errors.New("unknown log type")
)

// Spinner lifecycle misuse.
var (
	// ErrSpinnerRunning is returned by Start while a session is already running.
	ErrSpinnerRunning = errors.New("spinner is already running")

	// ErrSpinnerIdle is returned by Stop when no session is running.
	ErrSpinnerIdle = errors.New("spinner is not running")
)
