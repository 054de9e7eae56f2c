package config

import (
	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte
