// Package utils provides shared helpers for the nu command.
//
// # I/O Utilities
//
// Functions for reading from stdin:
//   - ReadStdin: reads all piped data from standard input
//
// # Terminal Utilities
//
// Functions for terminal detection:
//   - IsTerminal: checks if a file is connected to a terminal
package utils
