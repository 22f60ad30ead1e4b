// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

var metricsNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config holds the process configuration. The credential encryption key is
// intentionally absent: it is resolved per operation, never cached here.
type Config struct {
	// ServerHost is the host address the transit API binds to.
	ServerHost string
	// ServerPort is the port the transit API listens on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of the HTTP servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (debug, info, warn, error).
	LogLevel string

	// RequireExplicitKey rejects operations that would fall back to the
	// development default key.
	RequireExplicitKey bool
	// CredentialsFile is the dotenv file holding NAME=<envelope> records.
	CredentialsFile string

	// RateLimitEnabled enables per-IP rate limiting on /v1/credentials.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the sustained per-IP request rate.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the per-IP burst size.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsPort is the port of the separate /metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and the nearest .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		ServerHost:      env.GetString("SERVER_HOST", "127.0.0.1"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		LogLevel: strings.ToLower(env.GetString("LOG_LEVEL", "info")),

		RequireExplicitKey: env.GetBool("REQUIRE_EXPLICIT_KEY", false),
		CredentialsFile:    env.GetString("CREDENTIALS_FILE", "credentials.env"),

		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 5.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 10),

		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "credseal"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate reports configuration values the server cannot start with.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerHost, validation.Required),
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.ShutdownTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.RateLimitRequestsPerSec, validation.When(c.RateLimitEnabled,
			validation.Required, validation.Min(0.0).Exclusive())),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled,
			validation.Required, validation.Min(1))),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled,
			validation.Required, validation.Match(metricsNamespacePattern))),
		validation.Field(&c.MetricsPort, validation.When(c.MetricsEnabled,
			validation.Required, validation.Min(1), validation.Max(65535),
			validation.NotIn(c.ServerPort).Error("must differ from SERVER_PORT"))),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv loads the first .env found walking up from the working directory.
// Variables already set in the environment take precedence.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
