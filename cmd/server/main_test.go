package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"clubdesk/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Addr:        "127.0.0.1:0",
		DBPath:      filepath.Join(t.TempDir(), "clubdesk.db"),
		Env:         config.EnvDevelopment,
		SlowQueryMs: 50,
		SlowReqMs:   200,
		Timezone:    "UTC",
		DefaultLang: "ar",
	}
}

// TestRun_StopsOnCancel verifies run drains and returns once its context ends.
func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(t)) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(shutdownTimeout + 5*time.Second):
		t.Fatal("run did not return after cancel")
	}
}

// TestRun_InvalidTimezone verifies configuration errors are returned, not fatal.
func TestRun_InvalidTimezone(t *testing.T) {
	cfg := testConfig(t)
	cfg.Timezone = "Mars/Olympus"
	err := run(context.Background(), cfg)
	if !errors.Is(err, config.ErrUnknownTimezone) {
		t.Errorf("err = %v, want ErrUnknownTimezone", err)
	}
}
