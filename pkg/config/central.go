package config

import (
	"os"
)

// Prompt driver names
const (
	DriverAuto   = "auto"
	DriverLine   = "line"
	DriverSurvey = "survey"
)

// FilePermissions holds file and directory permission settings
type FilePermissions struct {
	Directory os.FileMode `koanf:"directory"`
	File      os.FileMode `koanf:"file"`
}

// Prompt holds prompt sequencer settings
type Prompt struct {
	Driver string `koanf:"driver"`
}

// Config is the main configuration structure
type Config struct {
	Root            string          `koanf:"root"`
	Format          string          `koanf:"format"`
	DryRun          bool            `koanf:"dry_run"`
	FilePermissions FilePermissions `koanf:"file_permissions"`
	Prompt          Prompt          `koanf:"prompt"`
}
