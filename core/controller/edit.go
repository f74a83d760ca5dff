package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/pkg/async"
)

// Edit drives the edit screen of one product.
type Edit struct {
	base

	mu      sync.Mutex
	product *catalog.Product
}

func NewEdit(deps Deps) *Edit {
	return &Edit{base: newBase(deps, "edit")}
}

// Mount loads the product and the category choices concurrently.
func (c *Edit) Mount(ctx context.Context, id string) (catalog.Product, error) {
	if err := c.guard.Require(ctx); err != nil {
		return catalog.Product{}, err
	}

	productF := async.Async(ctx, id, c.Products.Get)
	categoriesF := async.Async(ctx, catalog.DefaultCategoryLimit, func(ctx context.Context, limit int) ([]catalog.Category, error) {
		return c.Categories.List(ctx, 0, limit)
	})

	p, perr := productF.Await()
	cats, cerr := categoriesF.Await()
	if err := errors.Join(perr, cerr); err != nil {
		return catalog.Product{}, c.fail(err, "Failed to load product")
	}

	c.Store.SetCategories(cats)
	c.Store.SetCurrentProduct(&p)

	c.mu.Lock()
	c.product = &p
	c.mu.Unlock()
	return p, nil
}

// Form returns the loaded product as a prefilled form.
func (c *Edit) Form() (catalog.ProductForm, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.product == nil {
		return catalog.ProductForm{}, ErrNotLoaded
	}
	return catalog.FormFromProduct(*c.product), nil
}

// Submit validates the form and saves the loaded product.
func (c *Edit) Submit(ctx context.Context, form catalog.ProductForm) (catalog.Product, error) {
	c.mu.Lock()
	loaded := c.product
	c.mu.Unlock()
	if loaded == nil {
		return catalog.Product{}, ErrNotLoaded
	}

	in, err := form.Input()
	if err != nil {
		return catalog.Product{}, err
	}

	p, err := c.Products.Update(ctx, loaded.ID, in)
	if err != nil {
		return catalog.Product{}, c.fail(err, "Failed to update product")
	}

	c.Store.UpdateProduct(p)
	c.success("Product updated successfully")
	c.Navigator.Navigate(RouteProducts)
	return p, nil
}
