package config

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DBPath != "clubdesk.db" || cfg.Env != EnvDevelopment {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SlowQueryMs != 50 || cfg.SlowReqMs != 200 {
		t.Errorf("SlowQueryMs = %d SlowReqMs = %d, want 50 / 200", cfg.SlowQueryMs, cfg.SlowReqMs)
	}
	if len(cfg.TrustedOrigins) != 2 {
		t.Errorf("TrustedOrigins = %v", cfg.TrustedOrigins)
	}
	if cfg.Production() {
		t.Error("default env should not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLUBDESK_ADDR", ":9090")
	t.Setenv("CLUBDESK_ENV", "production")
	t.Setenv("CLUBDESK_TRUSTED_ORIGINS", "club.example.dz")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" || !cfg.Production() {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.TrustedOrigins) != 1 || cfg.TrustedOrigins[0] != "club.example.dz" {
		t.Errorf("TrustedOrigins = %v", cfg.TrustedOrigins)
	}
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("CLUBDESK_SLOW_QUERY_MS", "fast")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected parse env prefix, got %v", err)
	}
}

func TestConfig_CSRFKey(t *testing.T) {
	valid := strings.Repeat("ab", 32)
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		wantLen int
	}{
		{"configured", Config{CSRFKeyHex: valid}, nil, 32},
		{"random in development", Config{Env: EnvDevelopment}, nil, 32},
		{"bad hex", Config{CSRFKeyHex: "zz"}, ErrBadCSRFKey, 0},
		{"short", Config{CSRFKeyHex: "abcd"}, ErrBadCSRFKey, 0},
		{"missing in production", Config{Env: EnvProduction}, ErrMissingCSRFKey, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := tt.cfg.CSRFKey()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(key) != tt.wantLen {
				t.Errorf("len(key) = %d, want %d", len(key), tt.wantLen)
			}
		})
	}
}

func TestConfig_LocationAndLanguage(t *testing.T) {
	cfg := Config{Timezone: "UTC", DefaultLang: "fr"}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("Location = %v, %v", loc, err)
	}
	tag, err := cfg.Language()
	if err != nil || tag != language.French {
		t.Errorf("Language = %v, %v", tag, err)
	}

	if _, err := (Config{Timezone: "Mars/Olympus"}).Location(); !errors.Is(err, ErrUnknownTimezone) {
		t.Errorf("err = %v, want ErrUnknownTimezone", err)
	}
	if _, err := (Config{DefaultLang: "!!"}).Language(); !errors.Is(err, ErrBadLanguage) {
		t.Errorf("err = %v, want ErrBadLanguage", err)
	}
}
