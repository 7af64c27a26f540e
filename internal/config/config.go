// Package config loads padchain settings from an optional YAML file and the
// environment using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood in the config file, as PADCHAIN_* environment variables,
// and as bound command-line flags.
const (
	KeyDepth       = "depth"
	KeyInput       = "input"
	KeyWorkers     = "workers"
	KeyLogLevel    = "log_level"
	KeyDevelopment = "development"
	KeyDB          = "db"

	envPrefix      = "PADCHAIN"
	configFileName = "padchain"
	configFileType = "yaml"
)

// Defaults.
const (
	DefaultDepth    = 2
	DefaultWorkers  = 1
	DefaultLogLevel = "info"
)

// ErrInvalid is returned when a loaded setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved set of settings.
type Config struct {
	Depth       int
	Input       string
	Workers     int
	LogLevel    string
	Development bool
	DB          string
}

// New returns a viper instance with defaults and environment binding set up.
// Callers bind flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDepth, DefaultDepth)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDevelopment, false)
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyDB, DefaultDBPath())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v, or padchain.yaml from the working directory when
// path is empty. A missing default file is not an error; a missing explicit
// file is.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Depth:       v.GetInt(KeyDepth),
		Input:       v.GetString(KeyInput),
		Workers:     v.GetInt(KeyWorkers),
		LogLevel:    v.GetString(KeyLogLevel),
		Development: v.GetBool(KeyDevelopment),
		DB:          v.GetString(KeyDB),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("%w: depth must be non-negative (%d)", ErrInvalid, c.Depth)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive (%d)", ErrInvalid, c.Workers)
	}
	return nil
}

// DefaultDBPath returns ~/.padchain/runs.db, or runs.db in the working
// directory when the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "runs.db"
	}
	return filepath.Join(home, ".padchain", "runs.db")
}
