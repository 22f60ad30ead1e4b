package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/ProtonMail/go-crypto/eax"

	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

// EAXCipher implements CipherEngine using AES-256 in EAX mode.
//
// EAX is a CTR-based AEAD: the ciphertext has exactly the length of the
// plaintext and the 16-byte tag is carried separately in the envelope.
// Every seal draws a fresh 16-byte nonce from crypto/rand and binds
// cryptoDomain.AssociatedData into the tag.
//
// The cipher holds no key state and is safe for concurrent use. A new AES
// block is built from the key on every call.
type EAXCipher struct {
	aad []byte
}

// NewEAXCipher creates an EAX cipher bound to the envelope associated data.
func NewEAXCipher() *EAXCipher {
	return &EAXCipher{aad: []byte(cryptoDomain.AssociatedData)}
}

// Seal encrypts plaintext and returns the nonce, tag and ciphertext separately.
func (c *EAXCipher) Seal(plaintext, key []byte) (nonce, tag, ciphertext []byte, err error) {
	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, nil, nil, err
	}

	nonce = make([]byte, cryptoDomain.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// eax appends the tag after the ciphertext.
	sealed := aead.Seal(nil, nonce, plaintext, c.aad)
	split := len(sealed) - cryptoDomain.TagSize

	return nonce, sealed[split:], sealed[:split:split], nil
}

// Open authenticates and decrypts ciphertext.
//
// Returns cryptoDomain.ErrIntegrity if the tag does not verify (wrong key,
// tampered nonce, tag or ciphertext) and cryptoDomain.ErrInvalidEnvelope if
// the nonce or tag has the wrong length.
func (c *EAXCipher) Open(nonce, tag, ciphertext, key []byte) ([]byte, error) {
	if len(nonce) != cryptoDomain.NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", cryptoDomain.ErrInvalidEnvelope, cryptoDomain.NonceSize)
	}
	if len(tag) != cryptoDomain.TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes", cryptoDomain.ErrInvalidEnvelope, cryptoDomain.TagSize)
	}

	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, c.aad)
	if err != nil {
		return nil, cryptoDomain.ErrIntegrity
	}
	return plaintext, nil
}

func (c *EAXCipher) newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := eax.NewEAXWithNonceAndTagSize(block, cryptoDomain.NonceSize, cryptoDomain.TagSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create EAX mode: %w", err)
	}
	return aead, nil
}
