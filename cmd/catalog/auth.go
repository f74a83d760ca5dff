package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/catalog/core/controller"
)

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in with an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := controller.NewLogin(c.app.Deps()).Submit(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Logged in as %s\n", c.app.Store().Session().Email)
			return nil
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			controller.NewLogin(c.app.Deps()).Logout()
			fmt.Fprintln(c.out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			s := c.app.Store().Session()
			if !s.IsAuthenticated {
				return controller.ErrNotAuthenticated
			}
			return c.printer().session(s)
		},
	}
}
