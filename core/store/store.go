package store

import (
	"sync"

	"github.com/dmitrymomot/catalog/core/catalog"
)

// Kind names a family of queries that write the same part of the state.
type Kind string

// Query kinds. Listing, category filtering and search all write the product collection,
// so they share one kind.
const (
	KindProducts   Kind = "products"
	KindCategories Kind = "categories"
)

// Listener observes transitions. It receives copies of the state before and after.
// Listeners run in transition order and must not call back into the store.
type Listener func(prev, next State)

// Store holds the client state. All changes go through named transitions.
type Store struct {
	mu    sync.RWMutex
	state State
	gens  map[Kind]uint64

	listenersMu sync.Mutex
	listeners   map[uint64]Listener
	nextID      uint64

	// serializes notification so listeners see transitions in order
	notifyMu sync.Mutex
}

// New creates a store in the initial state.
func New() *Store {
	return &Store{
		state:     InitialState(),
		gens:      make(map[Kind]uint64),
		listeners: make(map[uint64]Listener),
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// update applies fn under the write lock and notifies listeners when fn reports a change.
func (s *Store) update(fn func(st *State) bool) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	prev := s.state.clone()
	changed := fn(&s.state)
	var next State
	if changed {
		next = s.state.clone()
	}
	s.mu.Unlock()

	if changed {
		s.notify(prev, next)
	}
	return changed
}

func (s *Store) notify(prev, next State) {
	s.listenersMu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.listenersMu.Unlock()

	for _, l := range ls {
		l(prev, next)
	}
}

// SetCredentials stores a new session. An empty token leaves the session unauthenticated.
func (s *Store) SetCredentials(token, email string) {
	s.update(func(st *State) bool {
		st.Session = Session{Token: token, Email: email, IsAuthenticated: token != ""}
		return true
	})
}

// Logout clears the session.
func (s *Store) Logout() {
	s.update(func(st *State) bool {
		st.Session = Session{}
		return true
	})
}

// ExpireSession logs out only while token is still the active one. It reports whether
// this call ended the session.
func (s *Store) ExpireSession(token string) bool {
	return s.update(func(st *State) bool {
		if !st.Session.IsAuthenticated || st.Session.Token != token {
			return false
		}
		st.Session = Session{}
		return true
	})
}

// SetProducts replaces the product collection.
func (s *Store) SetProducts(list []catalog.Product) {
	s.update(func(st *State) bool {
		st.Products = cloneProducts(list)
		return true
	})
}

// AddProduct prepends p.
func (s *Store) AddProduct(p catalog.Product) {
	s.update(func(st *State) bool {
		st.Products = append([]catalog.Product{cloneProduct(p)}, st.Products...)
		return true
	})
}

// UpdateProduct replaces the product with the same id, if present, and refreshes the
// current product when it matches.
func (s *Store) UpdateProduct(p catalog.Product) {
	s.update(func(st *State) bool {
		changed := false
		for i := range st.Products {
			if st.Products[i].ID == p.ID {
				st.Products[i] = cloneProduct(p)
				changed = true
			}
		}
		if st.CurrentProduct != nil && st.CurrentProduct.ID == p.ID {
			cp := cloneProduct(p)
			st.CurrentProduct = &cp
			changed = true
		}
		return changed
	})
}

// RemoveProduct drops every product with id and clears the current product when it matches.
func (s *Store) RemoveProduct(id string) {
	s.update(func(st *State) bool {
		kept := st.Products[:0:0]
		for _, p := range st.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		changed := len(kept) != len(st.Products)
		st.Products = kept
		if st.CurrentProduct != nil && st.CurrentProduct.ID == id {
			st.CurrentProduct = nil
			changed = true
		}
		return changed
	})
}

// SetCategories replaces the category collection.
func (s *Store) SetCategories(list []catalog.Category) {
	s.update(func(st *State) bool {
		st.Categories = append([]catalog.Category{}, list...)
		return true
	})
}

// SetPagination merges the non-nil fields of patch.
func (s *Store) SetPagination(patch PaginationPatch) {
	s.update(func(st *State) bool {
		st.Pagination.merge(patch)
		return true
	})
}

// SetLoading sets the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.update(func(st *State) bool {
		st.Loading = loading
		return true
	})
}

// SetError records msg and stops loading.
func (s *Store) SetError(msg string) {
	s.update(func(st *State) bool {
		st.Error = msg
		st.Loading = false
		return true
	})
}

// ClearError clears the error message.
func (s *Store) ClearError() {
	s.update(func(st *State) bool {
		st.Error = ""
		return true
	})
}

// SetSearchQuery stores the search text.
func (s *Store) SetSearchQuery(q string) {
	s.update(func(st *State) bool {
		st.SearchQuery = q
		return true
	})
}

// SetCurrentProduct sets the product being viewed or edited. Nil clears it.
func (s *Store) SetCurrentProduct(p *catalog.Product) {
	s.update(func(st *State) bool {
		if p == nil {
			st.CurrentProduct = nil
			return true
		}
		cp := cloneProduct(*p)
		st.CurrentProduct = &cp
		return true
	})
}
