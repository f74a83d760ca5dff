package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the length of application and workspace keys.
const KeySize = 32

var hkdfInfo = []byte("catalog/secrets/v1")

// GenerateKey returns a random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, errors.Join(ErrKeyGeneration, err)
	}
	return key, nil
}

// ParseKey decodes a hex or base64 encoded 32-byte key.
func ParseKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if key, err := hex.DecodeString(s); err == nil && len(key) == KeySize {
		return key, nil
	}
	if key, err := base64.StdEncoding.DecodeString(s); err == nil && len(key) == KeySize {
		return key, nil
	}
	return nil, ErrInvalidAppKey
}

// ScopeKey derives a workspace key from a name, for callers whose second key is an
// identifier rather than a secret.
func ScopeKey(name string) []byte {
	sum := sha256.Sum256([]byte(name))
	return sum[:]
}

func validate(appKey, workspaceKey []byte) error {
	if subtle.ConstantTimeEq(int32(len(appKey)), KeySize) != 1 {
		return ErrInvalidAppKey
	}
	if subtle.ConstantTimeEq(int32(len(workspaceKey)), KeySize) != 1 {
		return ErrInvalidWorkspaceKey
	}
	return nil
}

func deriveKey(appKey, workspaceKey []byte) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, appKey, workspaceKey, hkdfInfo), key); err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}
	return key, nil
}

func newGCM(appKey, workspaceKey []byte) (cipher.AEAD, error) {
	if err := validate(appKey, workspaceKey); err != nil {
		return nil, err
	}

	key, err := deriveKey(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// EncryptBytes seals plaintext with AES-256-GCM under a key derived from both inputs.
// The random nonce is prepended to the result.
func EncryptBytes(appKey, workspaceKey, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptBytes opens data produced by EncryptBytes with the same keys.
func DecryptBytes(appKey, workspaceKey, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}

	n := gcm.NonceSize()
	if len(ciphertext) < n+gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := gcm.Open(nil, ciphertext[:n], ciphertext[n:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// EncryptString is EncryptBytes with base64 output.
func EncryptString(appKey, workspaceKey []byte, plaintext string) (string, error) {
	data, err := EncryptBytes(appKey, workspaceKey, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecryptString reverses EncryptString.
func DecryptString(appKey, workspaceKey []byte, ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}
	plaintext, err := DecryptBytes(appKey, workspaceKey, data)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
