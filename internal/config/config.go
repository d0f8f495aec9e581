// Package config loads emojigen CLI settings from flags, environment and
// an optional YAML file.
//
// Precedence, highest first: flags bound with BindPFlag, EMOJIGEN_*
// environment variables, the config file, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/emojigen/layout"
	"github.com/gogpu/emojigen/render"
)

// EnvPrefix is the prefix of environment overrides, e.g. EMOJIGEN_RENDER_SIZE.
const EnvPrefix = "EMOJIGEN"

// Config is the full CLI configuration.
type Config struct {
	Render   RenderConfig `mapstructure:"render"`
	Logging  LogConfig    `mapstructure:"logging"`
	Keywords string       `mapstructure:"keywords"` // path of a YAML keyword table
}

// RenderConfig controls image output.
type RenderConfig struct {
	Size      int     `mapstructure:"size"`
	Hue       float64 `mapstructure:"hue"`
	Font      string  `mapstructure:"font"`
	EmojiFont string  `mapstructure:"emoji_font"`
	Rounded   bool    `mapstructure:"rounded"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level    string `mapstructure:"level"` // debug, info, warn, error
	File     string `mapstructure:"file"`  // empty logs to stderr
	MaxSize  int    `mapstructure:"max_size"`
	MaxFiles int    `mapstructure:"max_files"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("render.size", render.DefaultSize)
	v.SetDefault("render.hue", layout.DefaultHue)
	v.SetDefault("render.font", "")
	v.SetDefault("render.emoji_font", "")
	v.SetDefault("render.rounded", true)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_files", 5)
	v.SetDefault("keywords", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultPath returns ~/.config/emojigen/config.yaml, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "emojigen", "config.yaml")
}

// Load reads the config file at path into v and decodes the result.
// An explicit path must exist; with path empty the default location is
// tried and silently skipped when absent.
func Load(v *viper.Viper, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Render.Size <= 0 {
		return fmt.Errorf("config: render.size must be positive, got %d", c.Render.Size)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("config: unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
