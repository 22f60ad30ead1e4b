// Package commands contains CLI command implementations for the application.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// warnOnDefaultKey logs a warning when explicitKey and the environment are
// both empty. The key itself is never logged.
func warnOnDefaultKey(resolver credentialUseCase.KeyResolver, explicitKey string, logger *slog.Logger) {
	if _, source := resolver.ResolveWithSource(explicitKey); source == cryptoDomain.KeySourceDefault {
		logger.Warn("using the built-in development key; set "+cryptoDomain.EncryptionKeyEnvVar+" or pass --key",
			slog.String("key_source", string(source)))
	}
}

// describeCryptoError turns crypto failures into messages a CLI user can act on.
func describeCryptoError(err error) error {
	switch {
	case errors.Is(err, cryptoDomain.ErrIntegrity):
		return fmt.Errorf("integrity check failed: wrong key or tampered envelope: %w", err)
	case errors.Is(err, cryptoDomain.ErrInvalidEnvelope):
		return fmt.Errorf("not a valid envelope: %w", err)
	case errors.Is(err, cryptoDomain.ErrKeyResolution):
		return fmt.Errorf("no key available: pass --key or set %s: %w", cryptoDomain.EncryptionKeyEnvVar, err)
	default:
		return err
	}
}

func writeJSON(writer io.Writer, v any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}
	return nil
}
