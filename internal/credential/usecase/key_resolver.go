package usecase

import (
	"github.com/allisson/go-env"

	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

// EnvKeyResolver resolves passphrases with the precedence
// explicit > environment variable > development default.
//
// The environment is read on every call so a changed variable is observed
// without restarting the process.
type EnvKeyResolver struct {
	envVar   string
	fallback string
}

// NewKeyResolver creates a resolver reading cryptoDomain.EncryptionKeyEnvVar
// and falling back to cryptoDomain.DefaultDevelopmentKey.
func NewKeyResolver() *EnvKeyResolver {
	return &EnvKeyResolver{
		envVar:   cryptoDomain.EncryptionKeyEnvVar,
		fallback: cryptoDomain.DefaultDevelopmentKey,
	}
}

// Resolve returns the passphrase to use for one operation.
func (r *EnvKeyResolver) Resolve(explicit string) string {
	key, _ := r.ResolveWithSource(explicit)
	return key
}

// ResolveWithSource returns the passphrase and the tier that supplied it.
// Empty values count as unset at every tier.
func (r *EnvKeyResolver) ResolveWithSource(explicit string) (string, cryptoDomain.KeySource) {
	if explicit != "" {
		return explicit, cryptoDomain.KeySourceExplicit
	}
	if fromEnv := env.GetString(r.envVar, ""); fromEnv != "" {
		return fromEnv, cryptoDomain.KeySourceEnvironment
	}
	return r.fallback, cryptoDomain.KeySourceDefault
}
