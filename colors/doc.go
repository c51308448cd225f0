// Package colors styles terminal text with ANSI escape markers.
//
// Each Style maps to one SGR code, taken from the attributes defined by
// github.com/fatih/color. Apply composes any number of styles around a piece
// of text and closes it with a single reset marker:
//
//	colors.Apply([]colors.Style{colors.FgYellow, colors.Bold}, "Warning!")
//	colors.Red("Error")
//
// # Color Behavior
//
// Apply always emits markers. Callers that print to a terminal check Enabled
// first; styling is disabled when:
//   - CI environment variable is set to a truthy value
//   - NO_COLOR environment variable is present, even when empty
package colors
