// Package config loads process startup settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings. Values are read once at startup.
type Config struct {
	Port            string        // PORT, public listener port
	LogLevel        string        // LOG_LEVEL, zap level name
	DocsEnabled     bool          // DOCS_ENABLED, serve OpenAPI document and docs UI
	MetricsAddr     string        // METRICS_ADDR, Prometheus listener; empty disables it
	ShutdownTimeout time.Duration // SHUTDOWN_TIMEOUT, graceful shutdown bound
	Version         string        // APP_VERSION, overrides the build version label
}

// Defaults returns the configuration used when no variables are set.
func Defaults() Config {
	return Config{
		Port:            "8080",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads the optional env files (default ".env") into the process
// environment without overriding variables that are already set, then
// builds a Config. A missing env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, applying defaults for unset or
// blank keys and validating every value.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Defaults()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	var errs []error
	if v, ok := get("PORT"); ok {
		if n, err := strconv.Atoi(v); err != nil || n < 1 || n > 65535 {
			errs = append(errs, fmt.Errorf("PORT: %q is not a valid port", v))
		} else {
			cfg.Port = v
		}
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := get("DOCS_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("DOCS_ENABLED: %w", err))
		}
		cfg.DocsEnabled = b
	}
	if v, ok := get("METRICS_ADDR"); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := get("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %s must be positive", d))
		default:
			cfg.ShutdownTimeout = d
		}
	}
	if v, ok := get("APP_VERSION"); ok {
		cfg.Version = v
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the public listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}
