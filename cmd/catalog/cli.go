package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/catalog/app/catalog"
	"github.com/dmitrymomot/catalog/core/controller"
	"github.com/dmitrymomot/catalog/core/logger"
)

type appFactory func(opts ...catalog.AppOption) (*catalog.App, error)

// cli holds what the commands share during one invocation.
type cli struct {
	out    io.Writer
	errOut io.Writer
	newApp appFactory

	format  string
	timeout time.Duration

	app    *catalog.App
	cancel context.CancelFunc
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the product catalog from the terminal",
		Long: `catalog signs in to the product catalog API and lists, searches, creates,
updates and deletes products.

The session is kept between runs (see CATALOG_STATE_DRIVER).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVarP(&c.format, "output", "o", formatTable, "output format: table, json or yaml")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "overall command timeout (0 for none)")

	root.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newProductsCmd(c),
		newCategoriesCmd(c),
		newStatusCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(c.format); err != nil {
		return err
	}

	if c.timeout > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
		c.cancel = cancel
		cmd.SetContext(ctx)
	}

	app, err := c.newApp(catalog.WithNavigator(c), catalog.WithNotifier(c))
	if err != nil {
		return err
	}
	c.app = app

	if err := app.Start(cmd.Context()); err != nil {
		app.Logger().Warn("session not restored", logger.Error(err))
	}
	return nil
}

func (c *cli) close() error {
	if c.cancel != nil {
		c.cancel()
	}
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// Navigate is a no-op beyond logging; the terminal has a single screen.
func (c *cli) Navigate(route string) {
	if c.app != nil {
		c.app.Logger().Debug("navigate", logger.Route(route))
	}
}

func (c *cli) Notify(n controller.Notification) {
	fmt.Fprintf(c.errOut, "[%s] %s\n", n.Level, n.Message)
}

func (c *cli) printer() *printer {
	return newPrinter(c.out, c.format)
}
