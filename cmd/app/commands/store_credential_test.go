package commands

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/allisson/credseal/internal/credential/domain"
	"github.com/allisson/credseal/internal/credential/repository"
	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
	"github.com/allisson/credseal/internal/credential/usecase/mocks"
)

func TestRunStoreCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		useCase, resolver := newTestUseCase(t)
		logger, logs := newBufferLogger()
		path := filepath.Join(t.TempDir(), "credentials.env")
		records := credentialUseCase.NewRecordUseCase(repository.NewDotEnvRecordRepository(path), useCase)

		var out bytes.Buffer
		err := RunStoreCredential(ctx, records, resolver, logger, &out, path, "ADMIN_PASSWORD", "s3cret", "k")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "ADMIN_PASSWORD=")
		assert.NotContains(t, out.String(), "s3cret")
		assert.NotContains(t, logs.String(), "s3cret")

		record, err := records.Get(ctx, "ADMIN_PASSWORD", "k")
		require.NoError(t, err)
		password, err := record.Password(ctx)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", password)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, resolver := newTestUseCase(t)
		logger, _ := newBufferLogger()
		mockRecords := &mocks.MockRecordUseCase{}
		mockRecords.On("Save", ctx, "bad id", "s3cret", "k").
			Return(nil, credentialDomain.ErrInvalidRecordID)

		var out bytes.Buffer
		err := RunStoreCredential(ctx, mockRecords, resolver, logger, &out, "f.env", "bad id", "s3cret", "k")
		require.ErrorIs(t, err, credentialDomain.ErrInvalidRecordID)
		assert.Empty(t, out.String())
		mockRecords.AssertExpectations(t)
	})

	t.Run("save error", func(t *testing.T) {
		_, resolver := newTestUseCase(t)
		logger, _ := newBufferLogger()
		mockRecords := &mocks.MockRecordUseCase{}
		mockRecords.On("Save", ctx, "ID", "s3cret", "k").Return(nil, errors.New("disk full"))

		var out bytes.Buffer
		err := RunStoreCredential(ctx, mockRecords, resolver, logger, &out, "f.env", "ID", "s3cret", "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
