package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/credseal/internal/credential/usecase"
	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

func TestEnvKeyResolver_Resolve(t *testing.T) {
	resolver := usecase.NewKeyResolver()

	t.Run("explicit key wins over environment", func(t *testing.T) {
		t.Setenv(cryptoDomain.EncryptionKeyEnvVar, "env-key")

		key, source := resolver.ResolveWithSource("explicit-key")
		assert.Equal(t, "explicit-key", key)
		assert.Equal(t, cryptoDomain.KeySourceExplicit, source)
	})

	t.Run("environment key used without explicit key", func(t *testing.T) {
		t.Setenv(cryptoDomain.EncryptionKeyEnvVar, "env-key")

		key, source := resolver.ResolveWithSource("")
		assert.Equal(t, "env-key", key)
		assert.Equal(t, cryptoDomain.KeySourceEnvironment, source)
	})

	t.Run("default used when nothing configured", func(t *testing.T) {
		t.Setenv(cryptoDomain.EncryptionKeyEnvVar, "")

		key, source := resolver.ResolveWithSource("")
		assert.Equal(t, cryptoDomain.DefaultDevelopmentKey, key)
		assert.Equal(t, cryptoDomain.KeySourceDefault, source)
		assert.Equal(t, cryptoDomain.DefaultDevelopmentKey, resolver.Resolve(""))
	})

	t.Run("environment changes are observed without restart", func(t *testing.T) {
		t.Setenv(cryptoDomain.EncryptionKeyEnvVar, "first")
		assert.Equal(t, "first", resolver.Resolve(""))

		t.Setenv(cryptoDomain.EncryptionKeyEnvVar, "second")
		assert.Equal(t, "second", resolver.Resolve(""))
	})
}
