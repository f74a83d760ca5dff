package store

import "github.com/dmitrymomot/catalog/core/catalog"

// Session returns the current session.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Session
}

// IsAuthenticated reports whether a session token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Session.IsAuthenticated
}

// Token returns the session token or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Session.Token
}

// Products returns a copy of the product collection.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.state.Products)
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []catalog.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Category{}, s.state.Categories...)
}

// CurrentProduct returns the product being viewed, if any.
func (s *Store) CurrentProduct() (catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentProduct == nil {
		return catalog.Product{}, false
	}
	return cloneProduct(*s.state.CurrentProduct), true
}

// Pagination returns the pagination window.
func (s *Store) Pagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Pagination
}

// Loading reports the loading flag.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loading
}

// Error returns the last error message.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Error
}

// SearchQuery returns the search text.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SearchQuery
}
