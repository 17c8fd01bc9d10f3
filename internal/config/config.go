// Package config loads lvgraph CLI settings from a YAML file and LVGRAPH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is returned by Validate for an out-of-range setting.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Input  string       `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	MST    MSTConfig    `mapstructure:"mst"`
	Path   PathConfig   `mapstructure:"path"`
	Log    LogConfig    `mapstructure:"log"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type MSTConfig struct {
	Method string `mapstructure:"method"`
}

type PathConfig struct {
	Strategy string `mapstructure:"strategy"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration from file and environment variables.
// With an empty cfgFile, lvgraph.yaml is looked up in ~/.lvgraph and the
// working directory, and a missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".lvgraph"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("lvgraph")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LVGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input", "-")
	v.SetDefault("output.format", "text")
	v.SetDefault("mst.method", "kruskal")
	v.SetDefault("path.strategy", "scan")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	checks := []struct {
		key, val string
		allowed  []string
	}{
		{"output.format", c.Output.Format, []string{"text", "yaml"}},
		{"mst.method", c.MST.Method, []string{"kruskal", "prim"}},
		{"path.strategy", c.Path.Strategy, []string{"scan", "heap"}},
		{"log.format", c.Log.Format, []string{"text", "json"}},
	}
	for _, ch := range checks {
		if !contains(ch.allowed, ch.val) {
			return fmt.Errorf("%w: %s = %q (use: %s)", ErrInvalid, ch.key, ch.val, strings.Join(ch.allowed, ", "))
		}
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
