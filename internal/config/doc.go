// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as
// the file format.
//
// Configuration is loaded from ~/.config/inkshim/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/inkshim/config.cue on
// macOS, %APPDATA%\inkshim\config.cue on Windows). A legacy config.toml in
// the same directory is read when no config.cue exists. Both formats are
// validated against the embedded CUE schema (config_schema.cue), and every
// key can be overridden with an INKSHIM_ environment variable, for example
// INKSHIM_LOOK_N_FEEL_EINK_UPDATE_INTERVAL=5.
package config
