package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

const (
	minGeneratedKeyBytes = 16
	maxGeneratedKeyBytes = 1024
)

// RunGenerateKey prints a random passphrase of length bytes, base64 encoded,
// as an assignment ready for a .env file.
func RunGenerateKey(writer io.Writer, length int) error {
	if length < minGeneratedKeyBytes || length > maxGeneratedKeyBytes {
		return fmt.Errorf("invalid length %d: must be between %d and %d bytes",
			length, minGeneratedKeyBytes, maxGeneratedKeyBytes)
	}

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	_, _ = fmt.Fprintf(writer, "%s=\"%s\"\n", cryptoDomain.EncryptionKeyEnvVar, base64.StdEncoding.EncodeToString(raw))
	return nil
}
