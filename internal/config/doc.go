// Package config defines the build stamp file consumed by the buildstamp
// binary and provides helpers to load, validate and save it in YAML format.
//
// The Stamp type holds the package name, git SHA and git description that a
// packaging pipeline may drop next to the binary after building it.
package config
