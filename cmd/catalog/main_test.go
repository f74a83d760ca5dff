package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalog/app/catalog"
	domain "github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/health"
	"github.com/dmitrymomot/catalog/core/logger"
	"github.com/dmitrymomot/catalog/core/persist"
)

const boots = `{"id":"p1","name":"Boots","description":"Warm winter boots","price":1249.5,
	"images":["https://img/1.png"],"category":{"id":"c1","name":"Shoes"},"createdAt":"2024-03-05T10:00:00Z"}`

type fakeAPI struct {
	*httptest.Server
	creates atomic.Int32
	deletes atomic.Int32
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer T1" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"T1"}`))
	})
	mux.HandleFunc("GET /categories", authed(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"c1","name":"Shoes"}]`))
	}))
	mux.HandleFunc("GET /products", authed(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[` + boots + `]`))
	}))
	mux.HandleFunc("GET /products/search", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("searchedText") == "boots" {
			_, _ = w.Write([]byte(`[` + boots + `]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	mux.HandleFunc("GET /products/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Replace(boots, `"p1"`, `"`+r.PathValue("id")+`"`, 1)))
	}))
	mux.HandleFunc("POST /products", authed(func(w http.ResponseWriter, r *http.Request) {
		api.creates.Add(1)
		var in domain.ProductInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(domain.Product{ID: "p9", Name: in.Name, Price: in.Price, Images: in.Images})
	}))
	mux.HandleFunc("PUT /products/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		var in domain.ProductInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(domain.Product{ID: r.PathValue("id"), Name: in.Name, Price: in.Price})
	}))
	mux.HandleFunc("DELETE /products/{id}", authed(func(w http.ResponseWriter, _ *http.Request) {
		api.deletes.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

// harness runs commands against the fake API, sharing one state storage between runs.
type harness struct {
	t       *testing.T
	api     *fakeAPI
	storage *persist.MemoryStorage
	mu      sync.Mutex
}

func newHarness(t *testing.T) *harness {
	return &harness{t: t, api: newFakeAPI(t), storage: persist.NewMemoryStorage()}
}

func (h *harness) factory(opts ...catalog.AppOption) (*catalog.App, error) {
	cfg := catalog.Config{
		APIBaseURL:  h.api.URL,
		PageSize:    10,
		StateDriver: catalog.DriverMemory,
		StateKey:    persist.DefaultKey,
		AppName:     "catalog-test",
	}
	opts = append(opts, catalog.WithStorage(h.storage), catalog.WithLogger(logger.Discard()))
	return catalog.New(cfg, opts...)
}

func (h *harness) run(args ...string) (code int, stdout, stderr string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut, h.factory)
	return code, out.String(), errOut.String()
}

func TestCLI_SessionLifecycle(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	code, _, stderr := h.run("products", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Not logged in")

	code, stdout, _ := h.run("login", "user@example.com")
	require.Equal(t, 0, code)
	assert.Equal(t, "Logged in as user@example.com\n", stdout)

	code, stdout, _ = h.run("whoami")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "user@example.com")

	code, stdout, _ = h.run("products", "list")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Boots")
	assert.Contains(t, stdout, "$1,249.50")
	assert.Contains(t, stdout, "Page 1")

	code, _, _ = h.run("logout")
	require.Equal(t, 0, code)

	code, _, stderr = h.run("whoami")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Not logged in")
}

func TestCLI_InvalidLogin(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	code, _, stderr := h.run("login", "nope")
	assert.Equal(t, 1, code)
	assert.Equal(t, "email: Please enter a valid email address\n", stderr)
}

func TestCLI_Products(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	code, _, _ := h.run("login", "user@example.com")
	require.Equal(t, 0, code)

	t.Run("search as json", func(t *testing.T) {
		code, stdout, _ := h.run("products", "search", "boots", "-o", "json")
		require.Equal(t, 0, code)
		var list []domain.Product
		require.NoError(t, json.Unmarshal([]byte(stdout), &list))
		require.Len(t, list, 1)
		assert.Equal(t, "p1", list[0].ID)
	})

	t.Run("search without hits", func(t *testing.T) {
		code, stdout, _ := h.run("products", "search", "socks")
		require.Equal(t, 0, code)
		assert.Contains(t, stdout, "No products found")
	})

	t.Run("get several", func(t *testing.T) {
		code, stdout, _ := h.run("products", "get", "a", "b", "c", "-o", "json")
		require.Equal(t, 0, code)
		var list []domain.Product
		require.NoError(t, json.Unmarshal([]byte(stdout), &list))
		assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("get one as table", func(t *testing.T) {
		code, stdout, _ := h.run("products", "get", "p1")
		require.Equal(t, 0, code)
		assert.Contains(t, stdout, "March 5, 2024")
		assert.Contains(t, stdout, "https://img/1.png")
	})

	t.Run("create rejects negative price without a request", func(t *testing.T) {
		code, _, stderr := h.run("products", "create",
			"--name", "Boots", "--description", "Warm winter boots", "--price", "-5",
			"--category", "c1", "--image", "https://img/1.png")
		assert.Equal(t, 1, code)
		assert.Equal(t, "price: Price must be greater than 0\n", stderr)
		assert.Zero(t, h.api.creates.Load())
	})

	t.Run("create as yaml", func(t *testing.T) {
		code, stdout, stderr := h.run("products", "create",
			"--name", "Boots", "--description", "Warm winter boots", "--price", "49.9",
			"--category", "c1", "--image", "https://img/1.png,https://img/2.png", "-o", "yaml")
		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "id: p9")
		assert.Contains(t, stdout, "- https://img/2.png")
		assert.Contains(t, stderr, "Product created successfully")
		assert.EqualValues(t, 1, h.api.creates.Load())
	})

	t.Run("update keeps unchanged fields", func(t *testing.T) {
		code, stdout, stderr := h.run("products", "update", "p1", "--price", "10", "-o", "json")
		require.Equal(t, 0, code, stderr)
		var p domain.Product
		require.NoError(t, json.Unmarshal([]byte(stdout), &p))
		assert.Equal(t, "Boots", p.Name)
		assert.InDelta(t, 10, p.Price, 0)
	})

	t.Run("delete", func(t *testing.T) {
		code, _, stderr := h.run("products", "delete", "p1")
		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stderr, "Product deleted successfully")
		assert.EqualValues(t, 1, h.api.deletes.Load())
	})

	t.Run("categories", func(t *testing.T) {
		code, stdout, _ := h.run("categories", "list")
		require.Equal(t, 0, code)
		assert.Contains(t, stdout, "Shoes")
	})

	t.Run("unknown format", func(t *testing.T) {
		code, _, stderr := h.run("products", "list", "-o", "xml")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "unknown output format")
	})
}

func TestPrinter_Price(t *testing.T) {
	t.Parallel()

	p := newPrinter(&bytes.Buffer{}, formatTable)
	assert.Equal(t, "$49.50", p.price(49.5))
	assert.Equal(t, "$1,000,000.00", p.price(1_000_000))
}

func TestCLI_Status(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	code, stdout, stderr := h.run("status")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "storage")
	assert.Contains(t, stdout, "READY")

	code, stdout, _ = h.run("status", "-o", "json")
	require.Equal(t, 0, code)
	var report health.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.True(t, report.Ready())

	h.api.Close()
	code, stdout, stderr = h.run("status")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "fail")
	assert.Contains(t, stderr, errNotReady.Error())
}
