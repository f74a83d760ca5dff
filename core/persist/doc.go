// Package persist keeps the session of a store.Store across restarts.
//
// A Bridge subscribes to the store and writes the session as
//
//	{"auth":{"token":"...","email":"...","isAuthenticated":true}}
//
// under a single key whenever it changes. Logging out deletes the key. On startup
// Rehydrate reads the document back; missing or corrupted documents yield an empty
// session and a warning. Ready and Wait expose a gate that opens when rehydration is
// done, so callers can hold off auth-dependent decisions until then.
//
// The Bridge also implements the HTTP adapter's token source:
//
//	bridge := persist.NewBridge(st, storage)
//	client, _ := apiclient.New(baseURL, apiclient.WithTokenSource(bridge))
//
// Storage backends: FileStorage (one file per key, atomic replace), MemoryStorage, and
// the Redis storage in integration/database/redis. EncryptedStorage wraps any of them and
// seals values with pkg/secrets; a value that does not decrypt reads as ErrCorrupted.
package persist
