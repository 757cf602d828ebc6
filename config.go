package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_configName = ".beacon"
	_configType = "yaml"
	_envPrefix  = "BEACON"

	_defaultRow    = 2000000
	_defaultMax    = 4000000
	_defaultFormat = "text"
	_defaultColor  = "auto"
)

type Config struct {
	Row     int64  `mapstructure:"row"`
	Max     int64  `mapstructure:"max"`
	Format  string `mapstructure:"format"`
	Color   string `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
}

func (c *Config) Validate() error {
	if c.Max < 0 {
		return fmt.Errorf("max must not be negative, got %v", c.Max)
	}
	switch c.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}

// loadConfig merges flags, BEACON_* environment variables, an optional
// config file and defaults, in that order of precedence. A missing
// .beacon.yaml is not an error; a missing explicit path is.
func loadConfig(flags *pflag.FlagSet, configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("row", _defaultRow)
	v.SetDefault("max", _defaultMax)
	v.SetDefault("format", _defaultFormat)
	v.SetDefault("color", _defaultColor)
	v.SetDefault("verbose", false)

	v.SetConfigType(_configType)
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(_configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
