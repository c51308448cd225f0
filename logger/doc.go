// Package logger provides a leveled, namespaced console logger with spinner
// support.
//
// Every line carries a three letter label for its record type, the logger's
// namespace, the message and any variables:
//
//	ERR api: Request failed path=/users status=500
//
// # Levels and Types
//
// A logger is built with a minimum level. Records of other types are dropped:
//
//   - LevelError: error and success
//   - LevelWarning: error, warning and success (default)
//   - LevelInfo: everything
//
// Success records pass at every level.
//
// # Timing
//
// Loggers sharing a Clock append the time elapsed since the previous line
// any of them emitted:
//
//	clock := logger.NewClock()
//	api := logger.New(logger.Options{Namespace: "api", Clock: clock})
//	db := logger.New(logger.Options{Namespace: "db", Clock: clock})
//
// A Spinner tracks one running operation and reports its duration when
// stopped:
//
//	sp := log.Spinner()
//	_ = sp.Start("Loading data")
//	_ = sp.Stop(" done", logger.TypeSuccess, logger.V("rows", 42))
//	// SUC api: Loading data... done duration=1.204s rows=42
//
// Styling follows colors.Enabled, so output is plain text on CI.
package logger
