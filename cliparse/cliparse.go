// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultPort       = 5000
	DefaultSessionTTL = 24 * time.Hour
	DefaultEnvFile    = ".env"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionTTL    time.Duration
	SecureCookies bool
	EnvFile       string
}

// BindFlags registers the configuration flags on fs
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite, postgres or mysql)")

	// Sessions
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Server-side session lifetime")
	fs.BoolVar(&cfg.SecureCookies, "secure-cookies", false, "Mark session cookies Secure (HTTPS only)")

	fs.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Optional dotenv file")
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("five25", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := Resolve(fs, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve applies the dotenv file, environment variables and defaults to
// every setting whose flag was not given, then validates the result.
func Resolve(fs *pflag.FlagSet, cfg *Config) error {
	// Existing environment variables win over the file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if !fs.Changed("port") {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if !fs.Changed("session-ttl") {
		cfg.SessionTTL = DefaultSessionTTL
		if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return errors.New("invalid SESSION_TTL env variable")
			}
			cfg.SessionTTL = ttl
		}
	}
	if cfg.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}

	if !fs.Changed("secure-cookies") {
		if secure := os.Getenv("SECURE_COOKIES"); secure != "" {
			v, err := strconv.ParseBool(secure)
			if err != nil {
				return errors.New("invalid SECURE_COOKIES env variable")
			}
			cfg.SecureCookies = v
		}
	}

	return nil
}
