// Package config loads, validates, and normalizes sortd configuration.
//
// Configuration lives in a TOML file (default ~/.config/sortd/config.toml)
// and is decoded into the Config struct. Load applies defaults first, then
// file values, then normalization (path expansion) and validation, so
// callers always receive a usable config or an error explaining what to fix.
package config
