// Package file provides the TOML configuration store kept under
// ~/.marktext/config.toml.
package file
