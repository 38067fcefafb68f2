package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"HEALTHTICK_HTTP_PORT",
			"HEALTHTICK_SQLITE_DSN",
			"HEALTHTICK_SEED_CLIENTS",
			"HEALTHTICK_CORS_ORIGINS",
			"HEALTHTICK_LOG_LEVEL",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:healthtick.db" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if !cfg.SeedClients {
			t.Fatal("seeding should default to enabled")
		}
		if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %v", cfg.CORSOrigins)
		}
		if cfg.LogLevel != slog.LevelInfo {
			t.Fatalf("expected default log level info, got %v", cfg.LogLevel)
		}
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("HEALTHTICK_HTTP_PORT", "9090")
		t.Setenv("HEALTHTICK_SQLITE_DSN", "file:/tmp/calendar.db")
		t.Setenv("HEALTHTICK_SEED_CLIENTS", "false")
		t.Setenv("HEALTHTICK_CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
		t.Setenv("HEALTHTICK_LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:/tmp/calendar.db" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.SeedClients {
			t.Fatal("expected seeding to be disabled")
		}
		want := []string{"https://app.example.com", "https://admin.example.com"}
		if len(cfg.CORSOrigins) != len(want) {
			t.Fatalf("unexpected CORS origins: %v", cfg.CORSOrigins)
		}
		for i, origin := range want {
			if cfg.CORSOrigins[i] != origin {
				t.Fatalf("origin %d: got %q want %q", i, cfg.CORSOrigins[i], origin)
			}
		}
		if cfg.LogLevel != slog.LevelDebug {
			t.Fatalf("expected debug level, got %v", cfg.LogLevel)
		}
	})

	t.Run("rejects unparseable values", func(t *testing.T) {
		cases := map[string]string{
			"HEALTHTICK_HTTP_PORT":    "not-a-port",
			"HEALTHTICK_SEED_CLIENTS": "perhaps",
			"HEALTHTICK_LOG_LEVEL":    "shouting",
		}
		for key, value := range cases {
			t.Run(key, func(t *testing.T) {
				t.Setenv(key, value)
				if _, err := Load(); err == nil {
					t.Fatalf("expected error for %s=%q", key, value)
				}
			})
		}
	})

	t.Run("rejects non-positive port", func(t *testing.T) {
		t.Setenv("HEALTHTICK_HTTP_PORT", "0")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for port 0")
		}
	})
}
