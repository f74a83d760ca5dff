package main

import (
	"github.com/spf13/cobra"

	domain "github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/controller"
)

func newCategoriesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "c"},
		Short:   "Browse product categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			deps := c.app.Deps()
			if err := controller.NewGuard(deps.Store, deps.Gate, deps.Navigator).Require(ctx); err != nil {
				return err
			}

			list, err := c.app.Categories().List(ctx, 0, domain.DefaultCategoryLimit)
			if err != nil {
				return err
			}
			c.app.Store().SetCategories(list)
			return c.printer().categories(list)
		},
	})
	return cmd
}
