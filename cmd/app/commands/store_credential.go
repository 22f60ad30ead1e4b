package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
)

// RunStoreCredential encrypts plaintext and writes it to the credentials file
// under id. The plaintext is not echoed.
func RunStoreCredential(
	ctx context.Context,
	recordUseCase credentialUseCase.RecordUseCase,
	resolver credentialUseCase.KeyResolver,
	logger *slog.Logger,
	writer io.Writer,
	path, id, plaintext, explicitKey string,
) error {
	warnOnDefaultKey(resolver, explicitKey, logger)

	record, err := recordUseCase.Save(ctx, id, plaintext, explicitKey)
	if err != nil {
		return describeCryptoError(fmt.Errorf("failed to store credential %s: %w", id, err))
	}

	logger.Info("credential stored", slog.String("id", record.ID), slog.String("file", path))
	_, _ = fmt.Fprintf(writer, "%s=%s\n", record.ID, record.Envelope)
	return nil
}
