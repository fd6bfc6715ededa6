// Package config holds the argument model and the named profile store.
//
// Settings carries every value a run needs. BindFlags registers the cobra/pflag
// flags that fill it, and OverlayChanged copies only the flags the user set
// explicitly onto a loaded profile, so
//
//	predator-rgb --load work -y 40
//
// applies the "work" profile at 40% brightness.
//
// # Profile Storage
//
// Profiles are stored one file per name in the profile directory:
//   - Linux: $XDG_CONFIG_HOME/predator/profiles or $HOME/.config/predator/profiles
//   - macOS: $HOME/.config/predator/profiles
//   - Windows: %LOCALAPPDATA%\predator\profiles
//
// The directory is created with 0700 permissions on first save and files are
// written atomically. YAML is the default format; JSON (the format earlier
// releases wrote) and TOML are also read and written.
//
// Example profile (work.yaml):
//
//	mode: wave
//	zones:
//	  - 0
//	speed: 6
//	brightness: 80
//	direction: right-to-left
//	red: 0
//	green: 120
//	blue: 255
//	dry_run: false
package config
