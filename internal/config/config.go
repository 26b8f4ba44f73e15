// Package config loads findfiles defaults from an optional .findfiles.yaml
// file and FINDFILES_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/strongdm/findfiles/internal/finder"
)

// FileName is the config file looked up in the working directory.
const FileName = ".findfiles.yaml"

// EnvPrefix is prepended to upper-cased keys for environment overrides.
const EnvPrefix = "FINDFILES"

// Config holds the defaults applied to command-line flags that were not set.
type Config struct {
	Mode    string   `yaml:"mode" mapstructure:"mode"`       // "all" or "any"
	Exclude []string `yaml:"exclude" mapstructure:"exclude"` // globs dropped from every search
	LogDir  string   `yaml:"log_dir" mapstructure:"log_dir"` // write markdown search logs here when set
	Color   bool     `yaml:"color" mapstructure:"color"`     // colored console output
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:    "all",
		Exclude: []string{},
		LogDir:  "",
		Color:   true,
	}
}

// MatchMode returns the configured mode as a finder.Mode.
func (c *Config) MatchMode() (finder.Mode, error) {
	return finder.ParseMode(c.Mode)
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if _, err := c.MatchMode(); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	return nil
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (FINDFILES_*)
// 2. Config file (.findfiles.yaml in dir)
// 3. Default values
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"mode", "exclude", "log_dir", "color"} {
		v.BindEnv(key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine; defaults + env vars apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The mode is checked by MatchMode when a command falls back to it,
	// so an explicit --mode flag overrides a bad configured value.
	return cfg, nil
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return Load(wd)
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("log_dir", defaults.LogDir)
	v.SetDefault("color", defaults.Color)
}
