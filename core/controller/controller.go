package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/catalog/core/apiclient"
	"github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/logger"
	"github.com/dmitrymomot/catalog/core/store"
)

// Routes.
const (
	RouteAuth     = "/auth"
	RouteProducts = "/products"
	RouteCreate   = "/products/create"
)

// EditRoute is the edit screen of product id.
func EditRoute(id string) string {
	return "/products/edit/" + url.PathEscape(id)
}

// DetailsRoute is the details screen of product id.
func DetailsRoute(id string) string {
	return "/products/" + url.PathEscape(id)
}

// Navigator switches screens.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient user message.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Notifier shows notifications.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Gate blocks until persisted state has been restored. *persist.Bridge satisfies it.
type Gate interface {
	Wait(ctx context.Context) error
}

// AuthService logs users in.
type AuthService interface {
	Login(ctx context.Context, email string) (catalog.Credentials, error)
}

// ProductService is the product API.
type ProductService interface {
	List(ctx context.Context, offset, limit int) ([]catalog.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]catalog.Product, error)
	Search(ctx context.Context, text string) ([]catalog.Product, error)
	Get(ctx context.Context, id string) (catalog.Product, error)
	Create(ctx context.Context, in catalog.ProductInput) (catalog.Product, error)
	Update(ctx context.Context, id string, in catalog.ProductInput) (catalog.Product, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService is the category API.
type CategoryService interface {
	List(ctx context.Context, offset, limit int) ([]catalog.Category, error)
}

// Deps are the collaborators shared by every controller.
type Deps struct {
	Store      *store.Store
	Auth       AuthService
	Products   ProductService
	Categories CategoryService
	Navigator  Navigator
	Notifier   Notifier
	Gate       Gate
	Logger     *slog.Logger
}

func (d Deps) withDefaults(component string) Deps {
	if d.Navigator == nil {
		d.Navigator = NavigatorFunc(func(string) {})
	}
	if d.Notifier == nil {
		d.Notifier = NotifierFunc(func(Notification) {})
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	d.Logger = d.Logger.With(logger.Component(component))
	return d
}

// Guard checks authentication once persisted state is available.
type Guard struct {
	store *store.Store
	gate  Gate
	nav   Navigator
}

// NewGuard creates a guard. gate may be nil when there is nothing to wait for.
func NewGuard(st *store.Store, gate Gate, nav Navigator) *Guard {
	return &Guard{store: st, gate: gate, nav: nav}
}

// Require waits for the gate, then redirects to the auth screen and returns
// ErrNotAuthenticated when no session is held.
func (g *Guard) Require(ctx context.Context) error {
	if g.gate != nil {
		if err := g.gate.Wait(ctx); err != nil {
			return err
		}
	}
	if !g.store.IsAuthenticated() {
		g.nav.Navigate(RouteAuth)
		return ErrNotAuthenticated
	}
	return nil
}

// Message returns the user-facing text of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var opErr *OperationError
	if errors.As(err, &opErr) && opErr.Message != "" {
		return opErr.Message
	}
	return fallback
}

// base carries what every controller shares.
type base struct {
	Deps
	guard *Guard
}

func newBase(deps Deps, component string) base {
	deps = deps.withDefaults(component)
	return base{Deps: deps, guard: NewGuard(deps.Store, deps.Gate, deps.Navigator)}
}

func (b base) success(msg string) {
	b.Notifier.Notify(Notification{Level: LevelSuccess, Title: "Success", Message: msg})
}

// fail converts err into an OperationError and notifies the user. Unauthorized errors are
// left to the session expiry handler and produce no notification.
func (b base) fail(err error, fallback string) error {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return err
	}
	opErr := &OperationError{Message: Message(err, fallback), Err: err}
	b.Notifier.Notify(Notification{Level: LevelError, Title: "Error", Message: opErr.Message})
	b.Logger.Warn(fallback, logger.Error(err))
	return opErr
}
