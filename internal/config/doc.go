// SPDX-License-Identifier: MPL-2.0

// Package config handles application settings using Viper with CUE as the file format.
//
// Settings are loaded from $XDG_CONFIG_HOME/vocab/config.cue (~/.config/vocab on
// Linux, ~/Library/Application Support/vocab on macOS, %APPDATA%\vocab on
// Windows), or from ./vocab.cue when no user-level file exists. Values can be
// overridden with VOCAB_* environment variables, optionally read from a .env
// file in the working directory.
//
// Every file is validated against an embedded CUE schema (config_schema.cue)
// before it is merged over the defaults.
//
// These settings describe how vocab runs. The vocabulary itself (folders,
// types, rename script) is described by the manifest, see internal/manifest.
package config
