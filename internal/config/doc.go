// Package config loads and validates op3d configuration from a TOML file.
//
// Configuration resolution order: explicit --config path, then
// ~/.config/op3d/config.toml, then built-in defaults. All path fields are
// tilde-expanded and normalized at load time.
package config
