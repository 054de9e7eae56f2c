package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/commhealth/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "COMMHEALTH_"

// Load builds the effective configuration. overrides uses dotted keys
// (e.g. "file_permissions.file") and is applied last.
func Load(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	defaults, err := parseDefaults()
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 3. Caller overrides (flags)
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseDefaults() (map[string]interface{}, error) {
	defaults := make(map[string]interface{})
	if err := toml.Unmarshal(defaultConfig, &defaults); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to parse embedded defaults")
	}
	return defaults, nil
}

// envKey maps COMMHEALTH_FILE_PERMISSIONS__FILE to file_permissions.file
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func validate(cfg *Config) error {
	switch cfg.Prompt.Driver {
	case DriverAuto, DriverLine, DriverSurvey:
	default:
		return errors.Newf(errors.ErrConfigLoad, "unknown prompt driver %q", cfg.Prompt.Driver).
			WithDetail("allowed", []string{DriverAuto, DriverLine, DriverSurvey})
	}
	if cfg.FilePermissions.File == 0 || cfg.FilePermissions.Directory == 0 {
		return errors.New(errors.ErrConfigLoad, fmt.Sprintf(
			"file permissions must be non-zero (file=%o, directory=%o)",
			cfg.FilePermissions.File, cfg.FilePermissions.Directory))
	}
	return nil
}
