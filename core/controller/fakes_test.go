package controller_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalog/core/apiclient"
	"github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/controller"
	"github.com/dmitrymomot/catalog/core/store"
)

type fakeProducts struct {
	mu    sync.Mutex
	calls []string

	list           func(ctx context.Context, offset, limit int) ([]catalog.Product, error)
	listByCategory func(ctx context.Context, id string) ([]catalog.Product, error)
	search         func(ctx context.Context, text string) ([]catalog.Product, error)
	get            func(ctx context.Context, id string) (catalog.Product, error)
	create         func(ctx context.Context, in catalog.ProductInput) (catalog.Product, error)
	update         func(ctx context.Context, id string, in catalog.ProductInput) (catalog.Product, error)
	del            func(ctx context.Context, id string) error
}

func (f *fakeProducts) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeProducts) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeProducts) List(ctx context.Context, offset, limit int) ([]catalog.Product, error) {
	f.record("list")
	if f.list == nil {
		return []catalog.Product{}, nil
	}
	return f.list(ctx, offset, limit)
}

func (f *fakeProducts) ListByCategory(ctx context.Context, id string) ([]catalog.Product, error) {
	f.record("category:" + id)
	if f.listByCategory == nil {
		return []catalog.Product{}, nil
	}
	return f.listByCategory(ctx, id)
}

func (f *fakeProducts) Search(ctx context.Context, text string) ([]catalog.Product, error) {
	f.record("search:" + text)
	if f.search == nil {
		return []catalog.Product{}, nil
	}
	return f.search(ctx, text)
}

func (f *fakeProducts) Get(ctx context.Context, id string) (catalog.Product, error) {
	f.record("get:" + id)
	if f.get == nil {
		return catalog.Product{ID: id}, nil
	}
	return f.get(ctx, id)
}

func (f *fakeProducts) Create(ctx context.Context, in catalog.ProductInput) (catalog.Product, error) {
	f.record("create")
	if f.create == nil {
		return catalog.Product{ID: "new", Name: in.Name}, nil
	}
	return f.create(ctx, in)
}

func (f *fakeProducts) Update(ctx context.Context, id string, in catalog.ProductInput) (catalog.Product, error) {
	f.record("update:" + id)
	if f.update == nil {
		return catalog.Product{ID: id, Name: in.Name}, nil
	}
	return f.update(ctx, id, in)
}

func (f *fakeProducts) Delete(ctx context.Context, id string) error {
	f.record("delete:" + id)
	if f.del == nil {
		return nil
	}
	return f.del(ctx, id)
}

type fakeCategories struct {
	err  error
	list []catalog.Category
}

func (f *fakeCategories) List(context.Context, int, int) ([]catalog.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

type fakeAuth struct {
	creds catalog.Credentials
	err   error
	calls int
}

func (f *fakeAuth) Login(_ context.Context, email string) (catalog.Credentials, error) {
	f.calls++
	if f.err != nil {
		return catalog.Credentials{}, f.err
	}
	creds := f.creds
	creds.Email = email
	return creds, nil
}

type recorder struct {
	mu            sync.Mutex
	routes        []string
	notifications []controller.Notification
}

func (r *recorder) Navigate(route string) {
	r.mu.Lock()
	r.routes = append(r.routes, route)
	r.mu.Unlock()
}

func (r *recorder) Notify(n controller.Notification) {
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()
}

func (r *recorder) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

func (r *recorder) Notifications() []controller.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]controller.Notification(nil), r.notifications...)
}

type env struct {
	store      *store.Store
	products   *fakeProducts
	categories *fakeCategories
	auth       *fakeAuth
	ui         *recorder
}

func newEnv(authenticated bool) *env {
	st := store.New()
	if authenticated {
		st.SetCredentials("T1", "user@example.com")
	}
	return &env{
		store:      st,
		products:   &fakeProducts{},
		categories: &fakeCategories{list: []catalog.Category{{ID: "c1", Name: "Shoes"}}},
		auth:       &fakeAuth{creds: catalog.Credentials{Token: "T9"}},
		ui:         &recorder{},
	}
}

func (e *env) deps() controller.Deps {
	return controller.Deps{
		Store:      e.store,
		Auth:       e.auth,
		Products:   e.products,
		Categories: e.categories,
		Navigator:  e.ui,
		Notifier:   e.ui,
	}
}

func products(ids ...string) []catalog.Product {
	out := make([]catalog.Product, len(ids))
	for i, id := range ids {
		out[i] = catalog.Product{ID: id, Name: "Product " + id}
	}
	return out
}

func idsOf(list []catalog.Product) []string {
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}

// errorFromClient returns a network error produced by a real client.
func errorFromClient(t *testing.T) error {
	t.Helper()
	client, err := apiclient.New("http://127.0.0.1:1")
	require.NoError(t, err)
	return client.Get(context.Background(), "/products", nil)
}
