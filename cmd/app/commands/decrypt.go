package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
)

// RunDecrypt opens an envelope and prints the plaintext. Printing the secret
// is the explicit purpose of this command; nothing is logged.
func RunDecrypt(
	ctx context.Context,
	useCase credentialUseCase.CredentialUseCase,
	resolver credentialUseCase.KeyResolver,
	logger *slog.Logger,
	writer io.Writer,
	envelope, explicitKey string,
) error {
	warnOnDefaultKey(resolver, explicitKey, logger)

	plaintext, err := useCase.DecryptSecret(ctx, envelope, explicitKey)
	if err != nil {
		return describeCryptoError(fmt.Errorf("failed to decrypt: %w", err))
	}

	_, _ = fmt.Fprintln(writer, plaintext)
	return nil
}
