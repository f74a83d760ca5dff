// Package controller orchestrates the catalog screens on top of the store and the API
// facades: product list, sign-in, create, edit and details.
//
// Controllers are UI-agnostic. They talk to the outside through a Navigator (screen
// changes) and a Notifier (transient messages), and every blocking call takes a
// context.Context. Protected screens call Guard.Require, which waits for persisted state
// to be restored before deciding whether the user is signed in.
//
// The product list debounces search input through pkg/debounce and relies on store
// generations so that a slow response never replaces a newer one:
//
//	list := controller.NewProducts(deps, controller.WithSearchDebounce(500*time.Millisecond))
//	defer list.Close()
//
//	if err := list.Mount(ctx); err != nil {
//		return err
//	}
//	list.SetQuery("boots")
//
// Write operations report failures as *OperationError with a user-facing message and
// leave the store untouched. Unauthorized responses are not reported here; the session
// expiry handler owns them.
package controller
