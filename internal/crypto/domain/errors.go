// Package domain defines the credential envelope format, its constants and the
// cryptographic error taxonomy.
package domain

import (
	"github.com/allisson/credseal/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so the
// HTTP layer maps them to 422 Unprocessable Entity, while callers can still tell
// them apart with errors.Is.
var (
	// ErrInvalidEnvelope indicates the envelope is not valid base64 or decodes to
	// fewer than HeaderSize bytes. It signals malformed or truncated data, not an
	// authentication failure.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidInput, "invalid envelope")

	// ErrIntegrity indicates authentication tag verification failed.
	//
	// A wrong key and a tampered or corrupted ciphertext are reported with the
	// same error so that decryption cannot be used as an oracle.
	ErrIntegrity = errors.Wrap(errors.ErrInvalidInput, "integrity check failed")

	// ErrInvalidKeySize indicates key material is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrKeyResolution indicates no usable passphrase could be resolved. It is
	// only returned when a caller requires a configured key; the default
	// resolution falls back to DefaultDevelopmentKey instead.
	ErrKeyResolution = errors.Wrap(errors.ErrInvalidInput, "no encryption key configured")
)
