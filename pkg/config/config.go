// Package config loads CLI configuration from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mzgrid/interfere/pkg/table"
)

// ErrBadLogLevel reports an unparseable log level name.
var ErrBadLogLevel = errors.New("config: unknown log level")

// Config carries the tunables shared by all commands. Fields map to the
// snake_case keys of the YAML file and to INTERFERE_* environment
// variables.
type Config struct {
	CacheDir  string  `mapstructure:"cache_dir"`
	CachePath string  `mapstructure:"cache_path"`
	MaxAtoms  int     `mapstructure:"max_atoms"`
	Charges   []int   `mapstructure:"charges"`
	Threshold float64 `mapstructure:"threshold"`
	LogLevel  string  `mapstructure:"log_level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		CacheDir:  defaultCacheDir(),
		MaxAtoms:  table.DefaultMaxAtoms,
		Charges:   table.DefaultCharges(),
		Threshold: table.DefaultThreshold,
		LogLevel:  "info",
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "interfere")
	}
	return "."
}

// CacheFile returns the group cache location: the explicit path when set,
// otherwise groups.db inside the cache directory.
func (c Config) CacheFile() string {
	if c.CachePath != "" {
		return c.CachePath
	}
	return filepath.Join(c.CacheDir, "groups.db")
}

// LabelFile returns the label cache location inside the cache directory.
func (c Config) LabelFile() string {
	return filepath.Join(c.CacheDir, "labels.csv")
}

// Load reads interfere.yaml from the given path, or from the working
// directory and the user config directory when path is empty. A missing
// file in search mode is not an error; every key can also come from an
// INTERFERE_* environment variable.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("interfere")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "interfere"))
		}
	}
	v.SetEnvPrefix("INTERFERE")
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("cache_dir", cfg.CacheDir)
	v.SetDefault("cache_path", cfg.CachePath)
	v.SetDefault("max_atoms", cfg.MaxAtoms)
	v.SetDefault("charges", cfg.Charges)
	v.SetDefault("threshold", cfg.Threshold)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ConfigureLogging applies the standard text formatter and the configured
// level to the package-level logger.
func ConfigureLogging(level string) error {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, level)
	}
	log.SetLevel(lvl)
	return nil
}
