package store

import (
	"slices"

	"github.com/dmitrymomot/catalog/core/catalog"
)

// Session is the authentication slice of the state. It is the only part that persists.
type Session struct {
	Token           string `json:"token"`
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Pagination tracks the list window.
type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// PaginationPatch is a partial pagination update; nil fields are left unchanged.
type PaginationPatch struct {
	Offset *int
	Limit  *int
	Total  *int
}

// AtOffset returns a patch that only moves the offset.
func AtOffset(offset int) PaginationPatch {
	return PaginationPatch{Offset: &offset}
}

func (p *Pagination) merge(patch PaginationPatch) {
	if patch.Offset != nil {
		p.Offset = *patch.Offset
	}
	if patch.Limit != nil {
		p.Limit = *patch.Limit
	}
	if patch.Total != nil {
		p.Total = *patch.Total
	}
}

// State is the full client state.
type State struct {
	Session        Session
	Products       []catalog.Product
	Categories     []catalog.Category
	CurrentProduct *catalog.Product
	Pagination     Pagination
	Loading        bool
	Error          string
	SearchQuery    string
}

// InitialState is the state of a fresh client.
func InitialState() State {
	return State{
		Products:   []catalog.Product{},
		Categories: []catalog.Category{},
		Pagination: Pagination{Limit: catalog.DefaultProductLimit},
	}
}

// clone returns a deep copy. Nested slices of products are copied too so callers cannot
// mutate the store through a snapshot.
func (s State) clone() State {
	out := s
	out.Products = cloneProducts(s.Products)
	out.Categories = slices.Clone(s.Categories)
	if s.CurrentProduct != nil {
		p := cloneProduct(*s.CurrentProduct)
		out.CurrentProduct = &p
	}
	return out
}

func cloneProducts(in []catalog.Product) []catalog.Product {
	if in == nil {
		return nil
	}
	out := make([]catalog.Product, len(in))
	for i, p := range in {
		out[i] = cloneProduct(p)
	}
	return out
}

func cloneProduct(p catalog.Product) catalog.Product {
	p.Images = slices.Clone(p.Images)
	return p
}
