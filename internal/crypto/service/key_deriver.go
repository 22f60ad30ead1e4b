package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

// PBKDF2KeyDeriver derives key material with PBKDF2-HMAC-SHA256.
//
// The salt and iteration count are fixed (cryptoDomain.KeyDerivationSalt and
// cryptoDomain.KeyDerivationIterations), so derivation is deterministic and an
// envelope can be opened from the passphrase alone. An empty passphrase is
// accepted and derives a weak but valid key.
type PBKDF2KeyDeriver struct {
	salt       []byte
	iterations int
}

// NewPBKDF2KeyDeriver creates a key deriver using the envelope format parameters.
func NewPBKDF2KeyDeriver() *PBKDF2KeyDeriver {
	return &PBKDF2KeyDeriver{
		salt:       []byte(cryptoDomain.KeyDerivationSalt),
		iterations: cryptoDomain.KeyDerivationIterations,
	}
}

// Derive returns cryptoDomain.KeySize bytes derived from passphrase.
func (d *PBKDF2KeyDeriver) Derive(passphrase string) []byte {
	return pbkdf2.Key([]byte(passphrase), d.salt, d.iterations, cryptoDomain.KeySize, sha256.New)
}
