package controller

import (
	"context"
	"errors"

	"github.com/dmitrymomot/catalog/core/apiclient"
	"github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/logger"
)

// Create drives the new product screen.
type Create struct {
	base
}

func NewCreate(deps Deps) *Create {
	return &Create{base: newBase(deps, "create")}
}

// Mount checks the session and loads the category choices.
func (c *Create) Mount(ctx context.Context) error {
	if err := c.guard.Require(ctx); err != nil {
		return err
	}

	list, err := c.Categories.List(ctx, 0, catalog.DefaultCategoryLimit)
	if err != nil {
		c.Logger.Warn("failed to fetch categories", logger.Error(err))
		if !errors.Is(err, apiclient.ErrUnauthorized) {
			c.Notifier.Notify(Notification{Level: LevelError, Title: "Error", Message: "Failed to load categories"})
		}
		return err
	}
	c.Store.SetCategories(list)
	return nil
}

// Submit validates the form and creates the product. An invalid form never reaches the API.
func (c *Create) Submit(ctx context.Context, form catalog.ProductForm) (catalog.Product, error) {
	in, err := form.Input()
	if err != nil {
		return catalog.Product{}, err
	}

	p, err := c.Products.Create(ctx, in)
	if err != nil {
		return catalog.Product{}, c.fail(err, "Failed to create product")
	}

	c.Store.AddProduct(p)
	c.success("Product created successfully")
	c.Navigator.Navigate(RouteProducts)
	return p, nil
}
