package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CategoriesAPI wraps the category endpoints.
type CategoriesAPI struct {
	r Requester
}

// NewCategoriesAPI creates the categories facade.
func NewCategoriesAPI(r Requester) *CategoriesAPI {
	return &CategoriesAPI{r: r}
}

// List returns one page of categories.
func (a *CategoriesAPI) List(ctx context.Context, offset, limit int) ([]Category, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var out []Category
	if err := a.r.Do(ctx, http.MethodGet, "/categories?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Category{}
	}
	return out, nil
}
