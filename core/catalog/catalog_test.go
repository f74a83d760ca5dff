package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalog/core/catalog"
)

type mockRequester struct {
	mock.Mock
}

func (m *mockRequester) Do(ctx context.Context, method, path string, body, out any) error {
	args := m.Called(ctx, method, path, body, out)
	return args.Error(0)
}

// respond decodes raw JSON into the out argument, the way the HTTP adapter would.
func respond(raw string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		if out := args.Get(4); out != nil {
			if err := json.Unmarshal([]byte(raw), out); err != nil {
				panic(err)
			}
		}
	}
}

func TestAuthAPI_Login(t *testing.T) {
	t.Parallel()

	t.Run("token field", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodPost, "/auth", map[string]string{"email": "user@example.com"}, mock.Anything).
			Run(respond(`{"token":"T1"}`)).Return(nil)

		creds, err := catalog.NewAuthAPI(r).Login(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, catalog.Credentials{Token: "T1", Email: "user@example.com"}, creds)
		r.AssertExpectations(t)
	})

	t.Run("access_token field", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodPost, "/auth", mock.Anything, mock.Anything).
			Run(respond(`{"access_token":"T2","email":"other@example.com"}`)).Return(nil)

		creds, err := catalog.NewAuthAPI(r).Login(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "T2", creds.Token)
		assert.Equal(t, "user@example.com", creds.Email)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodPost, "/auth", mock.Anything, mock.Anything).
			Run(respond(`{}`)).Return(nil)

		_, err := catalog.NewAuthAPI(r).Login(context.Background(), "user@example.com")
		assert.ErrorIs(t, err, catalog.ErrMissingToken)
	})

	t.Run("requester error passes through", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		r := &mockRequester{}
		r.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(boom)

		_, err := catalog.NewAuthAPI(r).Login(context.Background(), "user@example.com")
		assert.Same(t, boom, err)
	})
}

func TestCategoriesAPI_List(t *testing.T) {
	t.Parallel()

	r := &mockRequester{}
	r.On("Do", mock.Anything, http.MethodGet, mock.MatchedBy(func(p string) bool {
		u, err := url.Parse(p)
		return err == nil && u.Path == "/categories" &&
			u.Query().Get("offset") == "0" && u.Query().Get("limit") == "100"
	}), nil, mock.Anything).Run(respond(`[{"id":"c1","name":"Shoes"}]`)).Return(nil)

	list, err := catalog.NewCategoriesAPI(r).List(context.Background(), 0, catalog.DefaultCategoryLimit)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Shoes", list[0].Name)
	r.AssertExpectations(t)
}

func TestProductsAPI(t *testing.T) {
	t.Parallel()

	const product = `{"id":"p1","name":"Boots","description":"Warm winter boots","price":49.5,
		"images":["https://img/1.png"],"category":{"id":"c1","name":"Shoes"},
		"createdAt":"2024-01-02T03:04:05.000Z"}`

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodGet, mock.MatchedBy(func(p string) bool {
			u, _ := url.Parse(p)
			return u.Path == "/products" && u.Query().Get("offset") == "20" && u.Query().Get("limit") == "10"
		}), nil, mock.Anything).Run(respond(`[`+product+`]`)).Return(nil)

		list, err := catalog.NewProductsAPI(r).List(context.Background(), 20, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "p1", list[0].ID)
		assert.InDelta(t, 49.5, list[0].Price, 0)
		assert.Equal(t, "c1", list[0].Category.ID)
		assert.Equal(t, 2024, list[0].CreatedAt.Year())
	})

	t.Run("null list becomes empty", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodGet, mock.Anything, nil, mock.Anything).
			Run(respond(`null`)).Return(nil)

		list, err := catalog.NewProductsAPI(r).ListByCategory(context.Background(), "c1")
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("category filter", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodGet, "/products?categoryId=c+1", nil, mock.Anything).
			Run(respond(`[]`)).Return(nil)

		_, err := catalog.NewProductsAPI(r).ListByCategory(context.Background(), "c 1")
		require.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("search", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodGet, "/products/search?searchedText=red+shoes%26more", nil, mock.Anything).
			Run(respond(`[]`)).Return(nil)

		_, err := catalog.NewProductsAPI(r).Search(context.Background(), "red shoes&more")
		require.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("get escapes id", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodGet, "/products/a%2Fb", nil, mock.Anything).
			Run(respond(product)).Return(nil)

		p, err := catalog.NewProductsAPI(r).Get(context.Background(), "a/b")
		require.NoError(t, err)
		assert.Equal(t, "Boots", p.Name)
	})

	t.Run("create and update send input", func(t *testing.T) {
		t.Parallel()
		in := catalog.ProductInput{Name: "Boots", Description: "Warm winter boots", Price: 49.5, CategoryID: "c1", Images: []string{"https://img/1.png"}}

		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodPost, "/products", in, mock.Anything).Run(respond(product)).Return(nil)
		r.On("Do", mock.Anything, http.MethodPut, "/products/p1", in, mock.Anything).Run(respond(product)).Return(nil)

		api := catalog.NewProductsAPI(r)
		created, err := api.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "p1", created.ID)

		updated, err := api.Update(context.Background(), "p1", in)
		require.NoError(t, err)
		assert.Equal(t, "p1", updated.ID)
		r.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		r := &mockRequester{}
		r.On("Do", mock.Anything, http.MethodDelete, "/products/p1", nil, nil).Return(nil)

		require.NoError(t, catalog.NewProductsAPI(r).Delete(context.Background(), "p1"))
		r.AssertExpectations(t)
	})

	t.Run("error passes through", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		r := &mockRequester{}
		r.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(boom)

		_, err := catalog.NewProductsAPI(r).Get(context.Background(), "p1")
		assert.Same(t, boom, err)
	})
}
