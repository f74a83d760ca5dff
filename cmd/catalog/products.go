package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	domain "github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/controller"
)

// maxParallelFetches bounds concurrent requests of "products get".
const maxParallelFetches = 4

func newProductsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "p"},
		Short:   "List, search and edit products",
	}
	cmd.AddCommand(
		newProductsListCmd(c),
		newProductsSearchCmd(c),
		newProductsGetCmd(c),
		newProductsCreateCmd(c),
		newProductsUpdateCmd(c),
		newProductsDeleteCmd(c),
	)
	return cmd
}

func newProductsListCmd(c *cli) *cobra.Command {
	var (
		page     int
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			list := c.app.ProductList()
			defer list.Close()

			if err := list.Prepare(ctx); err != nil {
				return err
			}

			var err error
			if category != "" {
				err = list.FilterCategory(ctx, category)
			} else {
				err = list.Page(ctx, (max(page, 1)-1)*c.app.Store().Pagination().Limit)
			}
			if err != nil {
				return err
			}
			return c.printer().page(c.app.Store().Products(), pageInfo{
				Page:        list.CurrentPage(),
				HasNext:     list.HasNext(),
				HasPrevious: list.HasPrevious(),
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().StringVar(&category, "category", "", "only products of this category id")
	return cmd
}

func newProductsSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search products by text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			list := c.app.ProductList()
			defer list.Close()

			if err := list.Prepare(ctx); err != nil {
				return err
			}
			if err := list.Search(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			return c.printer().products(c.app.Store().Products())
		},
	}
}

func newProductsGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more products",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := make([]domain.Product, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxParallelFetches)
			for i, id := range args {
				g.Go(func() error {
					p, err := controller.NewDetails(c.app.Deps()).Mount(ctx, id)
					if err != nil {
						return err
					}
					found[i] = p
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if len(found) == 1 {
				return c.printer().product(found[0])
			}
			return c.printer().products(found)
		},
	}
}

// productFlags binds the product form to command flags.
type productFlags struct {
	form   domain.ProductForm
	images []string
}

func (f *productFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.form.Name, "name", "", "product name")
	cmd.Flags().StringVar(&f.form.Description, "description", "", "product description")
	cmd.Flags().StringVar(&f.form.Price, "price", "", "price, e.g. 49.90")
	cmd.Flags().StringVar(&f.form.CategoryID, "category", "", "category id")
	cmd.Flags().StringArrayVar(&f.images, "image", nil, "image URL; repeat or separate with commas")
}

// apply copies the flags the user set onto form.
func (f *productFlags) apply(cmd *cobra.Command, form domain.ProductForm) domain.ProductForm {
	changed := cmd.Flags().Changed
	if changed("name") {
		form.Name = f.form.Name
	}
	if changed("description") {
		form.Description = f.form.Description
	}
	if changed("price") {
		form.Price = f.form.Price
	}
	if changed("category") {
		form.CategoryID = f.form.CategoryID
	}
	if changed("image") {
		form.Images = domain.ParseImages(strings.Join(f.images, ","))
	}
	return form
}

func newProductsCreateCmd(c *cli) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			ctl := controller.NewCreate(c.app.Deps())
			if err := ctl.Mount(ctx); err != nil {
				return err
			}

			p, err := ctl.Submit(ctx, flags.apply(cmd, domain.ProductForm{}))
			if err != nil {
				return err
			}
			return c.printer().product(p)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newProductsUpdateCmd(c *cli) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a product",
		Long:  "Only the given flags change; everything else keeps its current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctl := controller.NewEdit(c.app.Deps())
			if _, err := ctl.Mount(ctx, args[0]); err != nil {
				return err
			}

			form, err := ctl.Form()
			if err != nil {
				return err
			}
			p, err := ctl.Submit(ctx, flags.apply(cmd, form))
			if err != nil {
				return err
			}
			return c.printer().product(p)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newProductsDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteProduct(cmd.Context(), controller.NewDetails(c.app.Deps()), args[0])
		},
	}
}

func deleteProduct(ctx context.Context, ctl *controller.Details, id string) error {
	if _, err := ctl.Mount(ctx, id); err != nil {
		return err
	}
	return ctl.Delete(ctx)
}
