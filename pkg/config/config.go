// Package config loads the user configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/graphkit/config.toml
// (~/.config/graphkit/config.toml when XDG_CONFIG_HOME is unset). A missing
// file is not an error: every field has a default, and fields absent from the
// file keep theirs.
//
//	workers = 8
//	overlap_threshold = 20.0
//	default_k = 3
//	metrics_file = "/var/lib/node_exporter/graphkit.prom"
//
//	[cache]
//	enabled = true
//	ttl = "168h"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	errs "github.com/heliosviz/graphkit/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "graphkit"

// Config holds user settings. CLI flags override them.
type Config struct {
	Workers          int         `toml:"workers" validate:"min=1,max=1024"`
	OverlapThreshold float64     `toml:"overlap_threshold" validate:"gt=0"`
	DefaultK         int         `toml:"default_k" validate:"min=1"`
	MetricsFile      string      `toml:"metrics_file"`
	Cache            CacheConfig `toml:"cache"`
}

// CacheConfig configures the report cache.
type CacheConfig struct {
	Enabled bool     `toml:"enabled"`
	TTL     Duration `toml:"ttl" validate:"gte=0"`
}

// Duration is a time.Duration written as a Go duration string ("90m").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:          runtime.NumCPU(),
		OverlapThreshold: 20.0,
		DefaultK:         2,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     Duration(7 * 24 * time.Hour),
		},
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// LoadDefault loads the config file from Path.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Load reads path over the defaults and validates the result. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Default(), errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errs.New(errs.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

var validate = newValidator()

// newValidator reports fields by their TOML key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		return name
	})
	return v
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, formatValidationError(err), "invalid config")
	}
	return nil
}

func formatValidationError(err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = formatFieldError(e)
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch e.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
