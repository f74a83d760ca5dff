// Package secrets provides AES-256-GCM encryption under a compound key.
//
// An application key and a workspace key, both 32 bytes, are combined with HKDF-SHA256
// into the encryption key; the derived key is cleared after every operation. The
// workspace key scopes ciphertexts: data sealed for one workspace cannot be opened with
// another. When the scope is a plain name rather than a secret, ScopeKey turns it into a
// workspace key.
//
//	appKey, err := secrets.ParseKey(os.Getenv("CATALOG_STATE_SECRET"))
//	if err != nil {
//		return err
//	}
//
//	sealed, err := secrets.EncryptBytes(appKey, secrets.ScopeKey("catalog_state"), doc)
//	...
//	doc, err = secrets.DecryptBytes(appKey, secrets.ScopeKey("catalog_state"), sealed)
//
// Every encryption draws a fresh random nonce, so equal plaintexts produce different
// ciphertexts. Tampering is detected on decryption and reported as ErrDecryptionFailed.
//
// Keys can be created with GenerateKey and stored hex or base64 encoded; ParseKey
// accepts both.
package secrets
