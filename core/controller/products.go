package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/catalog/core/apiclient"
	"github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/logger"
	"github.com/dmitrymomot/catalog/core/store"
	"github.com/dmitrymomot/catalog/pkg/debounce"
)

// DefaultSearchDebounce is the quiet period before a search is sent.
const DefaultSearchDebounce = 500 * time.Millisecond

const msgLoadProducts = "Failed to load products"

// ProductsOption configures the product list controller.
type ProductsOption func(*productsConfig)

type productsConfig struct {
	window   time.Duration
	clock    debounce.Clock
	pageSize int
}

// WithSearchDebounce sets the search quiet period.
func WithSearchDebounce(d time.Duration) ProductsOption {
	return func(c *productsConfig) {
		if d > 0 {
			c.window = d
		}
	}
}

// WithClock replaces the debounce clock.
func WithClock(clock debounce.Clock) ProductsOption {
	return func(c *productsConfig) {
		c.clock = clock
	}
}

// WithPageSize sets the listing page size.
func WithPageSize(n int) ProductsOption {
	return func(c *productsConfig) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Products drives the product list screen: paging, debounced search, category filter
// and deletion.
type Products struct {
	base
	debouncer *debounce.Debouncer
	pageSize  int

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	retry func(context.Context) error
}

// NewProducts creates the list controller. Call Close when the screen goes away.
func NewProducts(deps Deps, opts ...ProductsOption) *Products {
	cfg := productsConfig{window: DefaultSearchDebounce, pageSize: catalog.DefaultProductLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	var dopts []debounce.Option
	if cfg.clock != nil {
		dopts = append(dopts, debounce.WithClock(cfg.clock))
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Products{
		base:      newBase(deps, "products"),
		debouncer: debounce.New(cfg.window, dopts...),
		pageSize:  cfg.pageSize,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Mount checks the session, loads categories and the first page.
// A category failure is logged and does not stop the listing.
func (c *Products) Mount(ctx context.Context) error {
	if err := c.Prepare(ctx); err != nil {
		return err
	}
	return c.fetch(ctx, 0)
}

// Prepare is Mount without the first page fetch, for callers that start with a
// search, a filter or another page.
func (c *Products) Prepare(ctx context.Context) error {
	if err := c.guard.Require(ctx); err != nil {
		return err
	}

	limit := c.pageSize
	c.Store.SetPagination(store.PaginationPatch{Limit: &limit})

	if err := c.loadCategories(ctx); err != nil {
		c.Logger.Warn("failed to fetch categories", logger.Error(err))
	}
	return nil
}

func (c *Products) loadCategories(ctx context.Context) error {
	gen := c.Store.BeginFetch(store.KindCategories)
	list, err := c.Categories.List(ctx, 0, catalog.DefaultCategoryLimit)
	if err != nil {
		c.Store.FailFetch(store.KindCategories, gen, "")
		return err
	}
	c.Store.ApplyCategories(gen, list)
	return nil
}

// Page fetches the page at offset.
func (c *Products) Page(ctx context.Context, offset int) error {
	return c.fetch(ctx, max(offset, 0))
}

func (c *Products) fetch(ctx context.Context, offset int) error {
	c.remember(func(ctx context.Context) error { return c.fetch(ctx, offset) })

	limit := c.Store.Pagination().Limit
	gen := c.Store.BeginFetch(store.KindProducts)

	list, err := c.Products.List(ctx, offset, limit)
	if err != nil {
		return c.failFetch(gen, err)
	}

	total := len(list)
	if c.Store.ApplyProducts(gen, list, &store.PaginationPatch{Offset: &offset, Limit: &limit, Total: &total}) {
		c.Logger.Debug("products loaded", logger.Count("offset", offset), logger.Count("count", total))
	}
	return nil
}

func (c *Products) failFetch(gen uint64, err error) error {
	msg := ""
	if !errors.Is(err, apiclient.ErrUnauthorized) {
		msg = Message(err, msgLoadProducts)
	}
	if c.Store.FailFetch(store.KindProducts, gen, msg) {
		c.Logger.Warn(msgLoadProducts, logger.Error(err))
	}
	return err
}

// SetQuery records the search text and schedules the search. Only the last value
// within the debounce window is sent.
func (c *Products) SetQuery(text string) {
	c.Store.SetSearchQuery(text)
	c.debouncer.Trigger(func() {
		if err := c.Search(c.ctx, text); err != nil && c.ctx.Err() == nil {
			c.Logger.Debug("search failed", logger.Error(err))
		}
	})
}

// FlushQuery sends a pending search immediately.
func (c *Products) FlushQuery() bool {
	return c.debouncer.Flush()
}

// Search runs a search now and records text as the active query. Blank text returns to
// the first page of the listing.
func (c *Products) Search(ctx context.Context, text string) error {
	c.Store.SetSearchQuery(text)
	if strings.TrimSpace(text) == "" {
		return c.fetch(ctx, 0)
	}
	c.remember(func(ctx context.Context) error { return c.Search(ctx, text) })

	gen := c.Store.BeginFetch(store.KindProducts)
	list, err := c.Products.Search(ctx, text)
	if err != nil {
		return c.failFetch(gen, err)
	}

	offset, total := 0, len(list)
	c.Store.ApplyProducts(gen, list, &store.PaginationPatch{Offset: &offset, Total: &total})
	return nil
}

// FilterCategory lists the products of one category. An empty id shows everything.
func (c *Products) FilterCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return c.fetch(ctx, 0)
	}
	c.remember(func(ctx context.Context) error { return c.FilterCategory(ctx, categoryID) })

	gen := c.Store.BeginFetch(store.KindProducts)
	list, err := c.Products.ListByCategory(ctx, categoryID)
	if err != nil {
		return c.failFetch(gen, err)
	}

	offset, total := 0, len(list)
	c.Store.ApplyProducts(gen, list, &store.PaginationPatch{Offset: &offset, Total: &total})
	return nil
}

// Next moves one page forward. It does nothing while a search query is active.
func (c *Products) Next(ctx context.Context) error {
	if c.searching() {
		return nil
	}
	p := c.Store.Pagination()
	return c.fetch(ctx, p.Offset+p.Limit)
}

// Previous moves one page back, stopping at the first page. It does nothing while a
// search query is active.
func (c *Products) Previous(ctx context.Context) error {
	if c.searching() {
		return nil
	}
	p := c.Store.Pagination()
	return c.fetch(ctx, max(0, p.Offset-p.Limit))
}

// HasNext reports whether the last fetch returned a full page. It is wrong when the
// final page is exactly full; the API exposes no total to do better.
func (c *Products) HasNext() bool {
	if c.searching() {
		return false
	}
	p := c.Store.Pagination()
	return p.Limit > 0 && p.Total == p.Limit
}

// HasPrevious reports whether the list is past the first page.
func (c *Products) HasPrevious() bool {
	return !c.searching() && c.Store.Pagination().Offset > 0
}

func (c *Products) searching() bool {
	return strings.TrimSpace(c.Store.SearchQuery()) != ""
}

// CurrentPage is the 1-based page number.
func (c *Products) CurrentPage() int {
	p := c.Store.Pagination()
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

// Delete removes a product. The store is only changed when the API call succeeds.
func (c *Products) Delete(ctx context.Context, id string) error {
	if err := c.Products.Delete(ctx, id); err != nil {
		return c.fail(err, "Failed to delete product")
	}
	c.Store.RemoveProduct(id)
	c.success("Product deleted successfully")
	return nil
}

// Retry repeats the last list, search or filter request.
func (c *Products) Retry(ctx context.Context) error {
	c.mu.Lock()
	retry := c.retry
	c.mu.Unlock()

	if retry == nil {
		return c.fetch(ctx, 0)
	}
	return retry(ctx)
}

func (c *Products) remember(fn func(context.Context) error) {
	c.mu.Lock()
	c.retry = fn
	c.mu.Unlock()
}

// Close stops pending searches and cancels in-flight debounced requests.
func (c *Products) Close() {
	c.debouncer.Stop()
	c.cancel()
}
