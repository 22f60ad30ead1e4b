// Package usecase implements credential encryption, decryption and record
// access on top of the crypto services.
package usecase

import (
	"context"

	credentialDomain "github.com/allisson/credseal/internal/credential/domain"
	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

// KeyResolver picks the passphrase for a single seal or open.
type KeyResolver interface {
	// Resolve returns explicit if non-empty, otherwise the environment key if
	// set, otherwise the development default.
	Resolve(explicit string) string

	// ResolveWithSource is Resolve plus the tier that supplied the passphrase.
	ResolveWithSource(explicit string) (string, cryptoDomain.KeySource)
}

// RecordRepository loads stored credential envelopes keyed by identifier.
type RecordRepository interface {
	// Load returns identifier -> envelope for every stored credential.
	Load(ctx context.Context) (map[string]string, error)

	// Save creates or replaces the envelope stored under id.
	Save(ctx context.Context, id, envelope string) error
}

// CredentialUseCase is the entry point ordinary callers use to protect and
// reveal secrets. An empty explicitKey means "not provided".
type CredentialUseCase interface {
	// EncryptSecret seals plaintext into an envelope string.
	EncryptSecret(ctx context.Context, plaintext, explicitKey string) (string, error)

	// DecryptSecret opens an envelope string and returns the plaintext.
	DecryptSecret(ctx context.Context, envelope, explicitKey string) (string, error)

	// VerifySecret opens an envelope and discards the plaintext.
	VerifySecret(ctx context.Context, envelope, explicitKey string) error
}

// RecordUseCase exposes stored credentials as decrypt-on-access records.
type RecordUseCase interface {
	// List returns every stored record sorted by identifier.
	List(ctx context.Context, explicitKey string) ([]*credentialDomain.Record, error)

	// Get returns the record with the given identifier.
	Get(ctx context.Context, id, explicitKey string) (*credentialDomain.Record, error)

	// Save encrypts plaintext and stores it under id, replacing any previous
	// envelope with that identifier.
	Save(ctx context.Context, id, plaintext, explicitKey string) (*credentialDomain.Record, error)

	// VerifyAll opens every stored envelope and reports per-record results
	// sorted by identifier.
	VerifyAll(ctx context.Context, explicitKey string) ([]credentialDomain.VerificationResult, error)
}
