// Package service provides the key derivation and authenticated encryption
// primitives behind credential envelopes.
package service

// KeyDeriver turns a passphrase into fixed-length key material.
type KeyDeriver interface {
	// Derive returns domain.KeySize bytes of key material. The same passphrase
	// always yields the same key material. Callers own the returned slice and
	// should zero it when done.
	Derive(passphrase string) []byte
}

// CipherEngine performs authenticated encryption bound to a fixed associated
// data context.
type CipherEngine interface {
	// Seal encrypts plaintext under key with a fresh random nonce.
	Seal(plaintext, key []byte) (nonce, tag, ciphertext []byte, err error)

	// Open verifies the tag and decrypts ciphertext. It never returns
	// unverified plaintext.
	Open(nonce, tag, ciphertext, key []byte) ([]byte, error)
}
