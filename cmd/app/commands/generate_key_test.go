package commands

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/credseal/internal/crypto/domain"
)

func TestRunGenerateKey(t *testing.T) {
	t.Run("default length", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunGenerateKey(&out, 32))

		line := strings.TrimSpace(out.String())
		value, ok := strings.CutPrefix(line, cryptoDomain.EncryptionKeyEnvVar+"=")
		require.True(t, ok)

		decoded, err := base64.StdEncoding.DecodeString(strings.Trim(value, `"`))
		require.NoError(t, err)
		assert.Len(t, decoded, 32)
	})

	t.Run("keys differ", func(t *testing.T) {
		var first, second bytes.Buffer
		require.NoError(t, RunGenerateKey(&first, 16))
		require.NoError(t, RunGenerateKey(&second, 16))
		assert.NotEqual(t, first.String(), second.String())
	})

	t.Run("invalid length", func(t *testing.T) {
		var out bytes.Buffer
		require.Error(t, RunGenerateKey(&out, 8))
		require.Error(t, RunGenerateKey(&out, 4096))
		assert.Empty(t, out.String())
	})
}
