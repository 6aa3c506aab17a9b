// Package config loads pathfind settings with viper.
//
// Precedence, lowest first: built-in defaults, optional config file
// (any format viper reads: yaml, json, toml), PATHFIND_* environment
// variables. Nested keys map to env names by replacing "." with "_",
// so server.addr is PATHFIND_SERVER_ADDR.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathfind/heuristic"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PATHFIND"

// Log formats accepted by log.format.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full settings tree.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CORSOrigin     string        `mapstructure:"cors_origin"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	// DefaultHeuristic is used by guided search when a request names none.
	DefaultHeuristic string `mapstructure:"default_heuristic"`
}

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.request_timeout", "10s")
	v.SetDefault("server.cors_origin", "*")

	// Search
	v.SetDefault("search.default_heuristic", string(heuristic.KindEuclidean))

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", FormatAuto)
}

// NewViper returns a viper instance with defaults and env binding.
// When path is non-empty the file is read and must exist.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	return v, nil
}

// Load builds a Config from defaults, the optional file at path and the
// environment, then validates it.
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}

	return FromViper(v)
}

// FromViper unmarshals and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := FromViper(newDefaultsOnly())
	if err != nil {
		panic(err) // defaults are constant
	}

	return cfg
}

func newDefaultsOnly() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	return v
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server.addr must not be empty")
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.Errorf("config: server.request_timeout must be positive, got %s", c.Server.RequestTimeout)
	}
	if _, err := heuristic.Parse(c.Search.DefaultHeuristic); err != nil {
		return errors.Wrap(err, "config: search.default_heuristic")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "config: log.level")
	}
	switch c.Log.Format {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return errors.Errorf("config: log.format must be %s, %s or %s, got %q",
			FormatAuto, FormatText, FormatJSON, c.Log.Format)
	}

	return nil
}

// DefaultHeuristic returns the parsed search.default_heuristic.
func (c *Config) DefaultHeuristic() heuristic.Kind {
	return heuristic.Kind(c.Search.DefaultHeuristic)
}
