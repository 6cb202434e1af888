// Package config loads CLI settings from a YAML file, a .env file and
// WIJA_* environment variables, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/wija/pkg/validation"
)

const (
	DefaultLogLevel  = "info"
	DefaultLocale    = "id"
	DefaultScript    = "both"
	DefaultLayout    = "stacked"
	DefaultCacheSize = 1024

	MaxCacheSize = 1 << 20
)

// Environment variable names
const (
	EnvLogLevel  = "WIJA_LOG_LEVEL"
	EnvLocale    = "WIJA_LOCALE"
	EnvScript    = "WIJA_SCRIPT"
	EnvLayout    = "WIJA_LAYOUT"
	EnvCacheSize = "WIJA_CACHE_SIZE"
	EnvFamily    = "WIJA_FAMILY"
)

// Config holds the settings shared by all wija commands.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	Locale    string `yaml:"locale"`
	Script    string `yaml:"script"`
	Layout    string `yaml:"layout"`
	CacheSize int    `yaml:"cache_size"` // 0 disables the transliteration cache
	Family    string `yaml:"family"`     // default family file for generation and stats
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		Locale:    DefaultLocale,
		Script:    DefaultScript,
		Layout:    DefaultLayout,
		CacheSize: DefaultCacheSize,
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are named) without overriding variables already set. Missing files are
// not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and the process environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays YAML onto cfg. Unknown keys are rejected and fields set to
// an empty string fall back to their defaults.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	c.LogLevel = validation.DefaultOr(c.LogLevel, DefaultLogLevel)
	c.Locale = validation.DefaultOr(c.Locale, DefaultLocale)
	c.Script = validation.DefaultOr(c.Script, DefaultScript)
	c.Layout = validation.DefaultOr(c.Layout, DefaultLayout)
	return nil
}

// ApplyEnv overrides fields from WIJA_* variables found through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for key, field := range map[string]*string{
		EnvLogLevel: &c.LogLevel,
		EnvLocale:   &c.Locale,
		EnvScript:   &c.Script,
		EnvLayout:   &c.Layout,
		EnvFamily:   &c.Family,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*field = v
		}
	}

	if v, ok := lookup(EnvCacheSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvCacheSize, v)
		}
		c.CacheSize = n
	}
	return nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		OneOf("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "warning", "error"}).
		OneOf("Locale", c.Locale, []string{"id", "en"}).
		OneOf("Script", c.Script, []string{"latin", "lontara", "both"}).
		OneOf("Layout", c.Layout, []string{"stacked", "inline"}).
		RangeInt("CacheSize", c.CacheSize, 0, MaxCacheSize).
		Validate()
}

var _ validation.Validatable = (*Config)(nil)
