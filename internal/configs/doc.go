// Package configs manages the nu command's configuration.
//
// Configuration is stored in TOML format, by default at
// $XDG_CONFIG_HOME/node-utils/config.toml (see os.UserConfigDir):
//
//	[logger]
//	namespace = "nu"
//	level = "warning"
//	since_last = false
//	frames = "bouncingBar"
//
//	[fetch]
//	timeout = "30s"
//
//	[fetch.headers]
//	Accept = "application/json"
//
// A missing file is not an error; Load returns Default in that case.
// Command-line flags override values read from the file.
package configs
