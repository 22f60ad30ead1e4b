// Package app provides the dependency injection container that assembles the
// application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/credseal/internal/config"
	credentialHTTP "github.com/allisson/credseal/internal/credential/http"
	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
	cryptoService "github.com/allisson/credseal/internal/crypto/service"
	"github.com/allisson/credseal/internal/http"
	"github.com/allisson/credseal/internal/metrics"
)

// Container holds application dependencies. Components are created on first
// access and reused afterwards; initialization errors are remembered.
type Container struct {
	config    *config.Config
	logOutput io.Writer

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Crypto
	keyDeriver cryptoService.KeyDeriver
	cipher     cryptoService.CipherEngine

	// Credential
	keyResolver       credentialUseCase.KeyResolver
	credentialUseCase credentialUseCase.CredentialUseCase
	credentialHandler *credentialHTTP.CredentialHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                    sync.Mutex
	loggerInit            sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	keyDeriverInit        sync.Once
	cipherInit            sync.Once
	keyResolverInit       sync.Once
	credentialUseCaseInit sync.Once
	credentialHandlerInit sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once

	metricsProviderErr   error
	businessMetricsErr   error
	credentialUseCaseErr error
	credentialHandlerErr error
	httpServerErr        error
	metricsServerErr     error
}

// NewContainer creates a container for cfg. Logs are written to stderr so
// they never mix with command output on stdout.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:    cfg,
		logOutput: os.Stderr,
	}
}

// SetLogOutput redirects the logger. It must be called before Logger.
func (c *Container) SetLogOutput(w io.Writer) {
	c.logOutput = w
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger configured from LOG_LEVEL.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, c.metricsProviderErr = metrics.NewProvider(c.config.MetricsNamespace)
		if c.metricsProviderErr != nil {
			c.metricsProviderErr = fmt.Errorf("failed to create metrics provider: %w", c.metricsProviderErr)
		}
	})
	return c.metricsProvider, c.metricsProviderErr
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, c.businessMetricsErr = c.initBusinessMetrics()
	})
	return c.businessMetrics, c.businessMetricsErr
}

// HTTPServer returns the transit API server with its routes registered.
// Background work of the router stops when ctx is done.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		c.httpServer, c.httpServerErr = c.initHTTPServer(ctx)
	})
	return c.httpServer, c.httpServerErr
}

// MetricsServer returns the /metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		c.metricsServer, c.metricsServerErr = c.initMetricsServer()
	})
	return c.metricsServer, c.metricsServerErr
}

// Shutdown stops every initialized server and flushes metrics.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	handler, err := c.CredentialHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(c.config.ServerHost, c.config.ServerPort, c.Logger())
	if err := server.SetupRouter(ctx, c.config, handler, provider); err != nil {
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}
	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}
	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
