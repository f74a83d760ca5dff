package persist

import (
	"context"
	"errors"

	"github.com/dmitrymomot/catalog/pkg/secrets"
)

// EncryptedStorage seals values before handing them to another Storage.
// Each key gets its own derived encryption key, so values cannot be swapped between keys.
type EncryptedStorage struct {
	inner  Storage
	appKey []byte
}

// NewEncryptedStorage wraps inner. appKey must be secrets.KeySize bytes.
func NewEncryptedStorage(inner Storage, appKey []byte) (*EncryptedStorage, error) {
	if len(appKey) != secrets.KeySize {
		return nil, secrets.ErrInvalidAppKey
	}
	return &EncryptedStorage{inner: inner, appKey: append([]byte(nil), appKey...)}, nil
}

// Get decrypts the stored value. Values that fail to decrypt are reported as ErrCorrupted.
func (s *EncryptedStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plaintext, err := secrets.DecryptBytes(s.appKey, secrets.ScopeKey(key), data)
	if err != nil {
		return nil, errors.Join(ErrCorrupted, err)
	}
	return plaintext, nil
}

func (s *EncryptedStorage) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := secrets.EncryptBytes(s.appKey, secrets.ScopeKey(key), value)
	if err != nil {
		return errors.Join(ErrStorage, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *EncryptedStorage) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
