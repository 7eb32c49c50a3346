// Package config loads and validates the TOML configuration for the
// logging backend and turns it into an installed logger.
package config
