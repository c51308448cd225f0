// Package cmd implements the nu command line.
//
// Each subcommand drives one package of the module:
//
//	nu fetch     fetch.JSON with a spinner around the request
//	nu read      jsonfile.Read, or stdin with "-"
//	nu hrtime    hrtime.Format
//	nu truncate  mathutil.Truncate
//	nu paint     colors.Apply
//	nu config    the TOML file behind the persistent flags
//
// Diagnostics go through a logger.Logger on stderr; results go to stdout.
package cmd
