package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ProductsAPI wraps the product endpoints. Each method is one request.
type ProductsAPI struct {
	r Requester
}

// NewProductsAPI creates the products facade.
func NewProductsAPI(r Requester) *ProductsAPI {
	return &ProductsAPI{r: r}
}

// List returns the page starting at offset.
func (a *ProductsAPI) List(ctx context.Context, offset, limit int) ([]Product, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	return a.list(ctx, "/products?"+q.Encode())
}

// ListByCategory returns the products of one category.
func (a *ProductsAPI) ListByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	q := url.Values{}
	q.Set("categoryId", categoryID)
	return a.list(ctx, "/products?"+q.Encode())
}

// Search returns products matching text.
func (a *ProductsAPI) Search(ctx context.Context, text string) ([]Product, error) {
	q := url.Values{}
	q.Set("searchedText", text)
	return a.list(ctx, "/products/search?"+q.Encode())
}

// Get returns one product.
func (a *ProductsAPI) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	if err := a.r.Do(ctx, http.MethodGet, productPath(id), nil, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Create stores a new product and returns it as saved by the API.
func (a *ProductsAPI) Create(ctx context.Context, in ProductInput) (Product, error) {
	var p Product
	if err := a.r.Do(ctx, http.MethodPost, "/products", in, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Update replaces a product and returns the saved version.
func (a *ProductsAPI) Update(ctx context.Context, id string, in ProductInput) (Product, error) {
	var p Product
	if err := a.r.Do(ctx, http.MethodPut, productPath(id), in, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Delete removes a product.
func (a *ProductsAPI) Delete(ctx context.Context, id string) error {
	return a.r.Do(ctx, http.MethodDelete, productPath(id), nil, nil)
}

func (a *ProductsAPI) list(ctx context.Context, path string) ([]Product, error) {
	var out []Product
	if err := a.r.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Product{}
	}
	return out, nil
}

func productPath(id string) string {
	return "/products/" + url.PathEscape(id)
}
