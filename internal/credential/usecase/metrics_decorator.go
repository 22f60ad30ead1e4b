package usecase

import (
	"context"
	"time"

	"github.com/allisson/credseal/internal/metrics"
)

const metricsDomain = "credential"

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// EncryptSecret records metrics for encryption operations.
func (c *credentialUseCaseWithMetrics) EncryptSecret(
	ctx context.Context,
	plaintext, explicitKey string,
) (string, error) {
	start := time.Now()
	envelope, err := c.next.EncryptSecret(ctx, plaintext, explicitKey)
	c.record(ctx, "encrypt", start, err)
	return envelope, err
}

// DecryptSecret records metrics for decryption operations.
func (c *credentialUseCaseWithMetrics) DecryptSecret(
	ctx context.Context,
	envelope, explicitKey string,
) (string, error) {
	start := time.Now()
	plaintext, err := c.next.DecryptSecret(ctx, envelope, explicitKey)
	c.record(ctx, "decrypt", start, err)
	return plaintext, err
}

// VerifySecret records metrics for verification operations.
func (c *credentialUseCaseWithMetrics) VerifySecret(ctx context.Context, envelope, explicitKey string) error {
	start := time.Now()
	err := c.next.VerifySecret(ctx, envelope, explicitKey)
	c.record(ctx, "verify", start, err)
	return err
}

func (c *credentialUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	c.metrics.RecordOperation(ctx, metricsDomain, operation, time.Since(start), err)
}
