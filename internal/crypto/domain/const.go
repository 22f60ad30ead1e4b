package domain

// Envelope layout and key derivation parameters.
//
// These values are part of the persisted format: every envelope already
// checked into configuration was produced with them. Changing any of them
// silently invalidates all existing envelopes.
const (
	// KeySize is the length in bytes of derived key material (AES-256).
	KeySize = 32

	// NonceSize is the length in bytes of the per-envelope random nonce.
	NonceSize = 16

	// TagSize is the length in bytes of the EAX authentication tag.
	TagSize = 16

	// HeaderSize is the fixed prefix of a decoded envelope: nonce followed by tag.
	HeaderSize = NonceSize + TagSize

	// KeyDerivationIterations is the PBKDF2-HMAC-SHA256 iteration count.
	KeyDerivationIterations = 10000

	// KeyDerivationSalt is the fixed salt used for every derivation.
	//
	// A fixed salt makes key material a pure function of the passphrase. This is
	// a known weakening kept for compatibility with stored envelopes.
	KeyDerivationSalt = "credseal-static-salt-v1"

	// AssociatedData is bound into every authentication tag to scope envelopes
	// to this subsystem.
	AssociatedData = "credseal-credential-envelope"
)

// KeySource identifies where a resolved passphrase came from.
type KeySource string

const (
	// KeySourceExplicit means the caller supplied the passphrase directly.
	KeySourceExplicit KeySource = "explicit"

	// KeySourceEnvironment means the passphrase was read from EncryptionKeyEnvVar.
	KeySourceEnvironment KeySource = "environment"

	// KeySourceDefault means no key was configured and DefaultDevelopmentKey was used.
	KeySourceDefault KeySource = "default"
)

const (
	// EncryptionKeyEnvVar is the environment variable consulted when no explicit key is given.
	EncryptionKeyEnvVar = "CREDENTIAL_ENCRYPTION_KEY"

	// DefaultDevelopmentKey is the last-resort passphrase. It is public and only
	// suitable for local development credentials.
	DefaultDevelopmentKey = "credseal-development-only-key"
)
