package controller

import (
	"context"
	"sync"

	"github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/logger"
)

// Details drives the product details screen.
type Details struct {
	base

	mu sync.Mutex
	id string
}

func NewDetails(deps Deps) *Details {
	return &Details{base: newBase(deps, "details")}
}

// Mount loads product id.
func (c *Details) Mount(ctx context.Context, id string) (catalog.Product, error) {
	if err := c.guard.Require(ctx); err != nil {
		return catalog.Product{}, err
	}

	c.mu.Lock()
	c.id = id
	c.mu.Unlock()

	p, err := c.Products.Get(ctx, id)
	if err != nil {
		c.Logger.Warn("failed to load product", logger.ID("product_id", id), logger.Error(err))
		return catalog.Product{}, &OperationError{Message: Message(err, "Failed to load product"), Err: err}
	}

	c.Store.SetCurrentProduct(&p)
	return p, nil
}

// Delete removes the displayed product and returns to the list.
func (c *Details) Delete(ctx context.Context) error {
	id := c.current()
	if id == "" {
		return ErrNotLoaded
	}

	if err := c.Products.Delete(ctx, id); err != nil {
		return c.fail(err, "Failed to delete product")
	}

	c.Store.RemoveProduct(id)
	c.success("Product deleted successfully")
	c.Navigator.Navigate(RouteProducts)
	return nil
}

// Edit opens the edit screen for the displayed product.
func (c *Details) Edit() error {
	id := c.current()
	if id == "" {
		return ErrNotLoaded
	}
	c.Navigator.Navigate(EditRoute(id))
	return nil
}

func (c *Details) current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}
