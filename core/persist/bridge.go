package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/catalog/core/logger"
	"github.com/dmitrymomot/catalog/core/store"
)

// DefaultKey is the storage key of the persisted state.
const DefaultKey = "catalog_state"

// document is the persisted layout. Only the session survives restarts.
type document struct {
	Auth store.Session `json:"auth"`
}

// Bridge mirrors the store's session into a Storage and restores it on startup.
type Bridge struct {
	store   *store.Store
	storage Storage
	key     string
	logger  *slog.Logger

	ready     chan struct{}
	readyOnce sync.Once

	unsubscribe func()
	closeOnce   sync.Once
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithKey overrides the storage key.
func WithKey(key string) BridgeOption {
	return func(b *Bridge) {
		if key != "" {
			b.key = key
		}
	}
}

// WithLogger sets the logger for persistence warnings.
func WithLogger(l *slog.Logger) BridgeOption {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBridge starts mirroring session changes of st into storage.
// Call Rehydrate once to restore the previous session and open the readiness gate.
func NewBridge(st *store.Store, storage Storage, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		store:   st,
		storage: storage,
		key:     DefaultKey,
		logger:  logger.Discard(),
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With(logger.Component("persist"))
	b.unsubscribe = st.Subscribe(b.onChange)
	return b
}

func (b *Bridge) onChange(prev, next store.State) {
	if prev.Session == next.Session {
		return
	}
	if err := b.save(context.Background(), next.Session); err != nil {
		b.logger.Error("failed to persist session", logger.Error(err), slog.String("key", b.key))
	}
}

func (b *Bridge) save(ctx context.Context, s store.Session) error {
	if s.Token == "" {
		return b.storage.Delete(ctx, b.key)
	}
	s.IsAuthenticated = true

	data, err := json.Marshal(document{Auth: s})
	if err != nil {
		return err
	}
	return b.storage.Set(ctx, b.key, data)
}

func (b *Bridge) load(ctx context.Context) (store.Session, error) {
	data, err := b.storage.Get(ctx, b.key)
	if err != nil {
		return store.Session{}, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return store.Session{}, errors.Join(ErrCorrupted, err)
	}
	if doc.Auth.IsAuthenticated && doc.Auth.Token == "" {
		return store.Session{}, fmt.Errorf("%w: authenticated without token", ErrCorrupted)
	}
	return doc.Auth, nil
}

// Rehydrate restores the persisted session into the store. A missing or unreadable
// document leaves the session empty; problems are logged, never returned as fatal.
// The readiness gate opens when Rehydrate returns, whatever the outcome.
func (b *Bridge) Rehydrate(ctx context.Context) error {
	defer b.readyOnce.Do(func() { close(b.ready) })

	s, err := b.load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		b.logger.Debug("no persisted session")
		return nil
	case errors.Is(err, ErrCorrupted):
		b.logger.Warn("discarding persisted session", logger.Error(err))
		return nil
	case err != nil:
		b.logger.Warn("failed to read persisted session", logger.Error(err))
		return err
	}

	if s.Token != "" {
		b.store.SetCredentials(s.Token, s.Email)
		b.logger.Debug("session restored", slog.String("key", b.key))
	}
	return nil
}

// Ready is closed once rehydration has finished.
func (b *Bridge) Ready() <-chan struct{} {
	return b.ready
}

// Wait blocks until rehydration has finished or ctx is done.
func (b *Bridge) Wait(ctx context.Context) error {
	select {
	case <-b.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Token returns the session token for outgoing requests. Once rehydration has finished
// the store is the source of truth and storage is only its mirror; before that the
// persisted document is read directly.
func (b *Bridge) Token(ctx context.Context) (string, error) {
	select {
	case <-b.ready:
		return b.store.Token(), nil
	default:
	}

	s, err := b.load(ctx)
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupted):
		return "", nil
	case err != nil:
		return "", err
	}
	return s.Token, nil
}

// Close stops mirroring.
func (b *Bridge) Close() {
	b.closeOnce.Do(b.unsubscribe)
}
