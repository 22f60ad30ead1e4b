package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/credseal/internal/credential/usecase"
	usecaseMocks "github.com/allisson/credseal/internal/credential/usecase/mocks"
	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	err error,
) {
	m.Called(ctx, domain, operation, duration, err)
}

func expectMetrics(ctx context.Context, m *mockBusinessMetrics, operation string, err error) {
	m.On("RecordOperation", ctx, "credential", operation, mock.AnythingOfType("time.Duration"), err).
		Return().
		Once()
}

func TestCredentialUseCaseWithMetrics_EncryptSecret(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCredentialUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("EncryptSecret", ctx, "hunter2", "test-key").Return("envelope", nil).Once()
		expectMetrics(ctx, mockMetrics, "encrypt", nil)

		envelope, err := uc.EncryptSecret(ctx, "hunter2", "test-key")

		assert.NoError(t, err)
		assert.Equal(t, "envelope", envelope)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCredentialUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("EncryptSecret", ctx, "hunter2", "").Return("", cryptoDomain.ErrKeyResolution).Once()
		expectMetrics(ctx, mockMetrics, "encrypt", cryptoDomain.ErrKeyResolution)

		_, err := uc.EncryptSecret(ctx, "hunter2", "")

		assert.ErrorIs(t, err, cryptoDomain.ErrKeyResolution)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCredentialUseCaseWithMetrics_DecryptSecret(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCredentialUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("DecryptSecret", ctx, "envelope", "test-key").Return("hunter2", nil).Once()
		expectMetrics(ctx, mockMetrics, "decrypt", nil)

		plaintext, err := uc.DecryptSecret(ctx, "envelope", "test-key")

		assert.NoError(t, err)
		assert.Equal(t, "hunter2", plaintext)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCredentialUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("DecryptSecret", ctx, "envelope", "wrong-key").Return("", cryptoDomain.ErrIntegrity).Once()
		expectMetrics(ctx, mockMetrics, "decrypt", cryptoDomain.ErrIntegrity)

		_, err := uc.DecryptSecret(ctx, "envelope", "wrong-key")

		assert.ErrorIs(t, err, cryptoDomain.ErrIntegrity)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCredentialUseCaseWithMetrics_VerifySecret(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCredentialUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("VerifySecret", ctx, "envelope", "").Return(nil).Once()
		expectMetrics(ctx, mockMetrics, "verify", nil)

		assert.NoError(t, uc.VerifySecret(ctx, "envelope", ""))
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCredentialUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("VerifySecret", ctx, "bad", "").Return(cryptoDomain.ErrInvalidEnvelope).Once()
		expectMetrics(ctx, mockMetrics, "verify", cryptoDomain.ErrInvalidEnvelope)

		assert.ErrorIs(t, uc.VerifySecret(ctx, "bad", ""), cryptoDomain.ErrInvalidEnvelope)
		mockMetrics.AssertExpectations(t)
	})
}
