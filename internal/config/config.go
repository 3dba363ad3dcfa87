package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config errors
var (
	ErrBadCSRFKey      = errors.New("CLUBDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
	ErrMissingCSRFKey  = errors.New("CLUBDESK_CSRF_KEY is required in production")
	ErrUnknownTimezone = errors.New("CLUBDESK_TIMEZONE is not a known location")
	ErrBadLanguage     = errors.New("CLUBDESK_DEFAULT_LANG is not a valid language tag")
)

// Config is the server configuration read from the environment.
type Config struct {
	Addr        string `env:"CLUBDESK_ADDR" envDefault:":8080"`
	DBPath      string `env:"CLUBDESK_DB_PATH" envDefault:"clubdesk.db"`
	Env         string `env:"CLUBDESK_ENV" envDefault:"development"`
	CSRFKeyHex  string `env:"CLUBDESK_CSRF_KEY"`
	SlowQueryMs int    `env:"CLUBDESK_SLOW_QUERY_MS" envDefault:"50"`
	SlowReqMs   int    `env:"CLUBDESK_SLOW_REQUEST_MS" envDefault:"200"`
	Timezone    string `env:"CLUBDESK_TIMEZONE" envDefault:"Africa/Algiers"`
	DefaultLang string `env:"CLUBDESK_DEFAULT_LANG" envDefault:"ar"`
	// TrustedOrigins are hosts allowed to post forms (host:port).
	TrustedOrigins []string `env:"CLUBDESK_TRUSTED_ORIGINS" envSeparator:"," envDefault:"localhost:8080,127.0.0.1:8080"`
}

// Load parses the configuration from environment variables.
// PRE: none
// POST: Returns defaults for unset variables, or a wrapped parse error
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Production reports whether the server runs in production.
func (c Config) Production() bool {
	return c.Env == EnvProduction
}

// CSRFKey decodes the configured key. Outside production a random key is
// generated when none is set; sessions then do not survive a restart.
func (c Config) CSRFKey() ([]byte, error) {
	if c.CSRFKeyHex != "" {
		key, err := hex.DecodeString(c.CSRFKeyHex)
		if err != nil || len(key) != 32 {
			return nil, ErrBadCSRFKey
		}
		return key, nil
	}
	if c.Production() {
		return nil, ErrMissingCSRFKey
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate CSRF key: %w", err)
	}
	slog.Warn("csrf_key_random", "hint", "set CLUBDESK_CSRF_KEY for production")
	return key, nil
}

// Location resolves the club's local timezone, used for the midnight reclassifier.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, c.Timezone)
	}
	return loc, nil
}

// Language returns the default display language.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.DefaultLang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrBadLanguage, c.DefaultLang)
	}
	return tag, nil
}
