package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNotReady = errors.New("some checks failed")

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the state storage and the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := c.app.Ready(cmd.Context())
			if err := c.printer().health(report); err != nil {
				return err
			}
			if !report.Ready() {
				return errNotReady
			}
			return nil
		},
	}
}
