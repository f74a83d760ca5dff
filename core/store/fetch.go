package store

import "github.com/dmitrymomot/catalog/core/catalog"

// BeginFetch issues a new generation for kind, marks the store loading and clears the
// error. Responses tagged with older generations are discarded.
func (s *Store) BeginFetch(kind Kind) uint64 {
	var gen uint64
	s.update(func(st *State) bool {
		s.gens[kind]++
		gen = s.gens[kind]
		st.Loading = true
		st.Error = ""
		return true
	})
	return gen
}

// Latest reports whether gen is the newest generation issued for kind.
func (s *Store) Latest(kind Kind, gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gens[kind] == gen
}

// ApplyProducts stores a product response if gen is still current. A non-nil page
// updates the pagination too.
func (s *Store) ApplyProducts(gen uint64, list []catalog.Product, page *PaginationPatch) bool {
	return s.update(func(st *State) bool {
		if s.gens[KindProducts] != gen {
			return false
		}
		st.Products = cloneProducts(list)
		if st.Products == nil {
			st.Products = []catalog.Product{}
		}
		if page != nil {
			st.Pagination.merge(*page)
		}
		st.Loading = false
		return true
	})
}

// ApplyCategories stores a category response if gen is still current.
func (s *Store) ApplyCategories(gen uint64, list []catalog.Category) bool {
	return s.update(func(st *State) bool {
		if s.gens[KindCategories] != gen {
			return false
		}
		st.Categories = append([]catalog.Category{}, list...)
		st.Loading = false
		return true
	})
}

// FailFetch records msg if gen is still current for kind. An empty msg only stops loading.
func (s *Store) FailFetch(kind Kind, gen uint64, msg string) bool {
	return s.update(func(st *State) bool {
		if s.gens[kind] != gen {
			return false
		}
		st.Error = msg
		st.Loading = false
		return true
	})
}
