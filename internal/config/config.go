// Package config loads engine configuration: koanf layering a TOML file
// under environment-variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/shridarpatil/dialogengine/internal/models"
)

// Config is the full set of boot-time knobs: the two navigation symbols,
// the session store connection, the session TTL policy, and the
// translation toggle.
type Config struct {
	Navigation  NavigationConfig  `koanf:"navigation"`
	Redis       RedisConfig       `koanf:"redis"`
	Session     SessionConfig     `koanf:"session"`
	Translation TranslationConfig `koanf:"translation"`
}

// NavigationConfig names the two navigation tokens.
type NavigationConfig struct {
	BackSymbol string `koanf:"back_symbol"`
	HomeSymbol string `koanf:"home_symbol"`
}

// RedisConfig is the session store connection.
type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// SessionConfig controls the session TTL the engine refreshes after every
// turn. Zero leaves expiry entirely to the store.
type SessionConfig struct {
	TTLSeconds int `koanf:"ttl_seconds"`
}

// TranslationConfig toggles Controller.TranslationEnabled and carries the
// invalid-input template strings per language.
type TranslationConfig struct {
	Enabled             bool              `koanf:"enabled"`
	InvalidInputStrings map[string]string `koanf:"invalid_input_strings"`
}

// Load reads path (a TOML file) then overlays any DIALOGENGINE_*
// environment variable: later providers win. An empty path is not an
// error — env vars and defaults still apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("DIALOGENGINE_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "DIALOGENGINE_")
		// Only the first underscore separates section from key, so
		// SESSION_TTL_SECONDS maps to session.ttl_seconds.
		return strings.Replace(strings.ToLower(s), "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load config env overrides: %w", err)
	}

	cfg := &Config{
		Navigation: NavigationConfig{
			BackSymbol: models.DefaultBackSymbol,
			HomeSymbol: models.DefaultHomeSymbol,
		},
		Redis: RedisConfig{Host: "localhost", Port: 6379, DB: 4},
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Navigation.BackSymbol == "" {
		cfg.Navigation.BackSymbol = models.DefaultBackSymbol
	}
	if cfg.Navigation.HomeSymbol == "" {
		cfg.Navigation.HomeSymbol = models.DefaultHomeSymbol
	}
	return cfg, nil
}

// Addr formats the Redis host:port pair for redis.Options.Addr.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
