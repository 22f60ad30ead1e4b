package usecase

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
	cryptoService "github.com/allisson/credseal/internal/crypto/service"
)

// credentialUseCase composes key resolution, key derivation, the cipher
// engine and the envelope codec.
type credentialUseCase struct {
	keyResolver          KeyResolver
	keyDeriver           cryptoService.KeyDeriver
	cipher               cryptoService.CipherEngine
	requireConfiguredKey bool
}

// NewCredentialUseCase creates a CredentialUseCase.
//
// When requireConfiguredKey is true, operations that would fall back to the
// development default key fail with cryptoDomain.ErrKeyResolution instead.
func NewCredentialUseCase(
	keyResolver KeyResolver,
	keyDeriver cryptoService.KeyDeriver,
	cipher cryptoService.CipherEngine,
	requireConfiguredKey bool,
) CredentialUseCase {
	return &credentialUseCase{
		keyResolver:          keyResolver,
		keyDeriver:           keyDeriver,
		cipher:               cipher,
		requireConfiguredKey: requireConfiguredKey,
	}
}

// EncryptSecret seals plaintext under the resolved key.
func (c *credentialUseCase) EncryptSecret(ctx context.Context, plaintext, explicitKey string) (string, error) {
	key, err := c.deriveKey(explicitKey)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(key)

	nonce, tag, ciphertext, err := c.cipher.Seal([]byte(plaintext), key)
	if err != nil {
		return "", fmt.Errorf("failed to seal secret: %w", err)
	}

	envelope := cryptoDomain.Envelope{Nonce: nonce, Tag: tag, Ciphertext: ciphertext}
	return envelope.String(), nil
}

// DecryptSecret parses the envelope, re-derives the key and opens it.
func (c *credentialUseCase) DecryptSecret(ctx context.Context, envelope, explicitKey string) (string, error) {
	plaintext, err := c.open(envelope, explicitKey)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(plaintext)

	return string(plaintext), nil
}

// VerifySecret checks that the envelope opens under the resolved key.
func (c *credentialUseCase) VerifySecret(ctx context.Context, envelope, explicitKey string) error {
	plaintext, err := c.open(envelope, explicitKey)
	if err != nil {
		return err
	}
	cryptoDomain.Zero(plaintext)
	return nil
}

func (c *credentialUseCase) open(envelope, explicitKey string) ([]byte, error) {
	parsed, err := cryptoDomain.ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	key, err := c.deriveKey(explicitKey)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return c.cipher.Open(parsed.Nonce, parsed.Tag, parsed.Ciphertext, key)
}

// deriveKey resolves the passphrase for this call and stretches it.
func (c *credentialUseCase) deriveKey(explicitKey string) ([]byte, error) {
	passphrase, source := c.keyResolver.ResolveWithSource(explicitKey)
	if source == cryptoDomain.KeySourceDefault && c.requireConfiguredKey {
		return nil, cryptoDomain.ErrKeyResolution
	}
	return c.keyDeriver.Derive(passphrase), nil
}
