package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/catalog/app/catalog"
	"github.com/dmitrymomot/catalog/core/apiclient"
	"github.com/dmitrymomot/catalog/core/controller"
	"github.com/dmitrymomot/catalog/core/validator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, catalog.NewApp)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newApp appFactory) int {
	c := &cli{out: stdout, errOut: stderr, newApp: newApp}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := c.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}

	printError(stderr, err)
	return 1
}

func printError(w io.Writer, err error) {
	if errs, ok := validator.Extract(err); ok {
		for _, e := range errs {
			fmt.Fprintf(w, "%s: %s\n", e.Field, e.Message)
		}
		return
	}

	switch {
	case errors.Is(err, controller.ErrNotAuthenticated), errors.Is(err, apiclient.ErrUnauthorized):
		fmt.Fprintln(w, "Not logged in. Run: catalog login <email>")
	default:
		fmt.Fprintln(w, "Error:", err)
	}
}
