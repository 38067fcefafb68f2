package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config captures environment driven configuration values for the calendar service.
type Config struct {
	HTTPPort    int
	SQLiteDSN   string
	SeedClients bool
	CORSOrigins []string
	LogLevel    slog.Level
}

// Load parses configuration values from the current process environment.
//
// Every field has a sensible default; Load only fails when a variable is set
// to a value it cannot parse.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:    8080,
		SQLiteDSN:   "file:healthtick.db",
		SeedClients: true,
		CORSOrigins: []string{"*"},
		LogLevel:    slog.LevelInfo,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("HEALTHTICK_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "HEALTHTICK_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("HEALTHTICK_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if seedValue := strings.TrimSpace(os.Getenv("HEALTHTICK_SEED_CLIENTS")); seedValue != "" {
		seed, err := strconv.ParseBool(seedValue)
		if err != nil {
			invalid = append(invalid, "HEALTHTICK_SEED_CLIENTS")
		} else {
			cfg.SeedClients = seed
		}
	}

	if originsValue := strings.TrimSpace(os.Getenv("HEALTHTICK_CORS_ORIGINS")); originsValue != "" {
		origins := make([]string, 0, 4)
		for _, origin := range strings.Split(originsValue, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) == 0 {
			invalid = append(invalid, "HEALTHTICK_CORS_ORIGINS")
		} else {
			cfg.CORSOrigins = origins
		}
	}

	if levelValue := strings.TrimSpace(os.Getenv("HEALTHTICK_LOG_LEVEL")); levelValue != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelValue)); err != nil {
			invalid = append(invalid, "HEALTHTICK_LOG_LEVEL")
		} else {
			cfg.LogLevel = level
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
