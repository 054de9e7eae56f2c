// Package config handles configuration management for commhealth.
//
// Values are layered in this order, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. COMMHEALTH_* environment variables
//  3. command-line overrides supplied by the caller
//
// There is no user configuration file. Every run is driven by the
// interactive answers; these settings only tune where and how the files are
// written.
package config
