package secrets

import "errors"

var (
	ErrInvalidAppKey       = errors.New("secrets: app key must be 32 bytes")
	ErrInvalidWorkspaceKey = errors.New("secrets: workspace key must be 32 bytes")
	ErrKeyGeneration       = errors.New("secrets: failed to generate key")
	ErrKeyDerivation       = errors.New("secrets: failed to derive key")
	ErrEncryptionFailed    = errors.New("secrets: encryption failed")
	ErrDecryptionFailed    = errors.New("secrets: decryption failed")
	ErrCiphertextTooShort  = errors.New("secrets: ciphertext too short")
)
