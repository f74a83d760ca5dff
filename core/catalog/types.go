package catalog

import (
	"context"
	"time"
)

// Requester performs one JSON request. *apiclient.Client satisfies it.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Category groups products. Read-only from the client's point of view.
type Category struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string    `json:"image,omitempty" yaml:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// Product is the client's working copy of a catalog item.
type Product struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Price       float64   `json:"price" yaml:"price"`
	Slug        string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Images      []string  `json:"images" yaml:"images"`
	Category    Category  `json:"category" yaml:"category"`
	CreatedAt   time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// ProductInput is the body of create and update requests.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	CategoryID  string   `json:"categoryId"`
	Images      []string `json:"images"`
}

// Credentials is the result of a successful login.
type Credentials struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Default page sizes.
const (
	DefaultProductLimit  = 10
	DefaultCategoryLimit = 100
)
