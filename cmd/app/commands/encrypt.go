package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
)

// ErrRoundTripMismatch indicates a freshly sealed envelope did not open back
// to the original plaintext.
var ErrRoundTripMismatch = errors.New("round-trip verification failed")

// RunEncrypt seals plaintext and prints the original value, the envelope and
// the result of decrypting the envelope again with the same key.
func RunEncrypt(
	ctx context.Context,
	useCase credentialUseCase.CredentialUseCase,
	resolver credentialUseCase.KeyResolver,
	logger *slog.Logger,
	writer io.Writer,
	plaintext, explicitKey string,
) error {
	warnOnDefaultKey(resolver, explicitKey, logger)

	envelope, err := useCase.EncryptSecret(ctx, plaintext, explicitKey)
	if err != nil {
		return describeCryptoError(fmt.Errorf("failed to encrypt: %w", err))
	}

	roundTrip, err := useCase.DecryptSecret(ctx, envelope, explicitKey)
	verified := err == nil && roundTrip == plaintext

	_, _ = fmt.Fprintf(writer, "Original:   %s\n", plaintext)
	_, _ = fmt.Fprintf(writer, "Envelope:   %s\n", envelope)
	if verified {
		_, _ = fmt.Fprintln(writer, "Round-trip: OK")
		return nil
	}

	_, _ = fmt.Fprintln(writer, "Round-trip: FAILED")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRoundTripMismatch, describeCryptoError(err))
	}
	return ErrRoundTripMismatch
}
