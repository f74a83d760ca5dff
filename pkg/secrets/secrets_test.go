package secrets_test

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalog/pkg/secrets"
)

func keys(t *testing.T) ([]byte, []byte) {
	t.Helper()
	app, err := secrets.GenerateKey()
	require.NoError(t, err)
	ws, err := secrets.GenerateKey()
	require.NoError(t, err)
	return app, ws
}

func TestEncryptDecryptBytes(t *testing.T) {
	t.Parallel()

	app, ws := keys(t)
	plaintext := []byte(`{"auth":{"token":"T1"}}`)

	sealed, err := secrets.EncryptBytes(app, ws, plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "T1")

	again, err := secrets.EncryptBytes(app, ws, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonces must differ")

	opened, err := secrets.DecryptBytes(app, ws, sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestDecrypt_Failures(t *testing.T) {
	t.Parallel()

	app, ws := keys(t)
	sealed, err := secrets.EncryptBytes(app, ws, []byte("data"))
	require.NoError(t, err)

	t.Run("other workspace", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.DecryptBytes(app, secrets.ScopeKey("other"), sealed)
		assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()
		tampered := append([]byte(nil), sealed...)
		tampered[len(tampered)-1] ^= 0xff
		_, err := secrets.DecryptBytes(app, ws, tampered)
		assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.DecryptBytes(app, ws, []byte("x"))
		assert.ErrorIs(t, err, secrets.ErrCiphertextTooShort)
	})

	t.Run("bad keys", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.EncryptBytes([]byte("short"), ws, nil)
		assert.ErrorIs(t, err, secrets.ErrInvalidAppKey)
		_, err = secrets.EncryptBytes(app, []byte("short"), nil)
		assert.ErrorIs(t, err, secrets.ErrInvalidWorkspaceKey)
	})
}

func TestStrings(t *testing.T) {
	t.Parallel()

	app, ws := keys(t)
	sealed, err := secrets.EncryptString(app, ws, "hello")
	require.NoError(t, err)

	opened, err := secrets.DecryptString(app, ws, sealed)
	require.NoError(t, err)
	assert.Equal(t, "hello", opened)

	_, err = secrets.DecryptString(app, ws, "%%%")
	assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)

	parsed, err := secrets.ParseKey(hex.EncodeToString(key))
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	parsed, err = secrets.ParseKey(" " + base64.StdEncoding.EncodeToString(key) + "\n")
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	_, err = secrets.ParseKey("abcd")
	assert.ErrorIs(t, err, secrets.ErrInvalidAppKey)
}

func TestScopeKey(t *testing.T) {
	t.Parallel()
	assert.Len(t, secrets.ScopeKey("catalog_state"), secrets.KeySize)
	assert.Equal(t, secrets.ScopeKey("a"), secrets.ScopeKey("a"))
	assert.NotEqual(t, secrets.ScopeKey("a"), secrets.ScopeKey("b"))
}
