package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/credseal/internal/config"
	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
	"github.com/allisson/credseal/internal/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:              "127.0.0.1",
		ServerPort:              8080,
		ShutdownTimeout:         time.Second,
		LogLevel:                "info",
		CredentialsFile:         "credentials.env",
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 5,
		RateLimitBurst:          10,
		MetricsEnabled:          true,
		MetricsNamespace:        "credseal_test",
		MetricsPort:             8081,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig()
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	t.Run("singleton", func(t *testing.T) {
		container := NewContainer(testConfig())
		assert.Same(t, container.Logger(), container.Logger())
	})

	t.Run("respects level", func(t *testing.T) {
		cfg := testConfig()
		cfg.LogLevel = "warn"
		buf := &bytes.Buffer{}
		container := NewContainer(cfg)
		container.SetLogOutput(buf)

		container.Logger().Info("hidden")
		container.Logger().Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})
}

func TestContainer_CredentialUseCase(t *testing.T) {
	t.Setenv(cryptoDomain.EncryptionKeyEnvVar, "")

	container := NewContainer(testConfig())
	useCase, err := container.CredentialUseCase()
	require.NoError(t, err)

	again, err := container.CredentialUseCase()
	require.NoError(t, err)
	assert.Same(t, useCase, again)

	ctx := context.Background()
	envelope, err := useCase.EncryptSecret(ctx, "hunter2", "test-key")
	require.NoError(t, err)

	plaintext, err := useCase.DecryptSecret(ctx, envelope, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plaintext)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "credseal_test_operations_total")

	require.NoError(t, container.Shutdown(ctx))
}

func TestContainer_RequireExplicitKey(t *testing.T) {
	t.Setenv(cryptoDomain.EncryptionKeyEnvVar, "")

	cfg := testConfig()
	cfg.RequireExplicitKey = true
	container := NewContainer(cfg)

	useCase, err := container.CredentialUseCase()
	require.NoError(t, err)

	_, err = useCase.EncryptSecret(context.Background(), "hunter2", "")
	assert.ErrorIs(t, err, cryptoDomain.ErrKeyResolution)
}

func TestContainer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, metrics.NoOpBusinessMetrics{}, businessMetrics)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestContainer_HTTPServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container := NewContainer(testConfig())
	container.SetLogOutput(&bytes.Buffer{})

	server, err := container.HTTPServer(ctx)
	require.NoError(t, err)

	again, err := container.HTTPServer(ctx)
	require.NoError(t, err)
	assert.Same(t, server, again)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/credentials/encrypt",
		strings.NewReader(`{"plaintext":"hunter2","key":"test-key"}`))
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"envelope"`)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	require.NotNil(t, metricsServer)
}

func TestContainer_RecordUseCase(t *testing.T) {
	container := NewContainer(testConfig())

	useCase, err := container.RecordUseCase(t.TempDir() + "/credentials.env")
	require.NoError(t, err)

	ctx := context.Background()
	record, err := useCase.Save(ctx, "ADMIN_PASSWORD", "hunter2", "test-key")
	require.NoError(t, err)

	loaded, err := useCase.Get(ctx, "ADMIN_PASSWORD", "test-key")
	require.NoError(t, err)
	assert.Equal(t, record.Envelope, loaded.Envelope)

	password, err := loaded.Password(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", password)
}

func TestContainer_ShutdownUninitialized(t *testing.T) {
	container := NewContainer(testConfig())
	assert.NoError(t, container.Shutdown(context.Background()))
}
