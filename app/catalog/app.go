package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/catalog/core/apiclient"
	domain "github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/config"
	"github.com/dmitrymomot/catalog/core/controller"
	"github.com/dmitrymomot/catalog/core/event"
	"github.com/dmitrymomot/catalog/core/health"
	"github.com/dmitrymomot/catalog/core/logger"
	"github.com/dmitrymomot/catalog/core/persist"
	"github.com/dmitrymomot/catalog/core/store"
	"github.com/dmitrymomot/catalog/integration/database/redis"
	"github.com/dmitrymomot/catalog/pkg/secrets"
)

// App wires the catalog client: configuration, logging, state, persistence, the HTTP
// adapter and the session expiry handler.
type App struct {
	config     Config
	logger     *slog.Logger
	store      *store.Store
	storage    persist.Storage
	bridge     *persist.Bridge
	bus        *event.Bus
	client     *apiclient.Client
	httpClient *http.Client
	navigator  controller.Navigator
	notifier   controller.Notifier

	auth       *domain.AuthAPI
	products   *domain.ProductsAPI
	categories *domain.CategoriesAPI

	closers     []io.Closer
	redisCheck  func(context.Context) error
	unsubscribe func()
}

type AppOption func(*App) error

// NewApp loads the configuration from the environment and builds the App.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// New builds the App from cfg.
func New(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(cfg)
	}
	if app.navigator == nil {
		app.navigator = controller.NavigatorFunc(func(route string) {
			app.logger.Debug("navigate", logger.Route(route))
		})
	}
	if app.notifier == nil {
		app.notifier = controller.NotifierFunc(func(n controller.Notification) {
			app.logger.Info(n.Message, slog.String("level", string(n.Level)))
		})
	}

	if app.storage == nil {
		storage, err := app.openStorage(context.Background())
		if err != nil {
			return nil, err
		}
		app.storage = storage
	}
	if cfg.StateSecret != "" {
		key, err := secrets.ParseKey(cfg.StateSecret)
		if err != nil {
			app.closeAll()
			return nil, err
		}
		encrypted, err := persist.NewEncryptedStorage(app.storage, key)
		if err != nil {
			app.closeAll()
			return nil, err
		}
		app.storage = encrypted
	}

	app.store = store.New()
	app.bus = event.NewBus(event.WithLogger(app.logger))
	app.bridge = persist.NewBridge(app.store, app.storage,
		persist.WithKey(cfg.StateKey),
		persist.WithLogger(app.logger),
	)

	clientOpts := []apiclient.Option{
		apiclient.WithTokenSource(app.bridge),
		apiclient.WithPublisher(app.bus),
		apiclient.WithLogger(app.logger),
	}
	if cfg.AppName != "" {
		clientOpts = append(clientOpts, apiclient.WithUserAgent(cfg.AppName))
	}
	switch {
	case app.httpClient != nil:
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(app.httpClient))
	case cfg.APITimeout > 0:
		clientOpts = append(clientOpts, apiclient.WithTimeout(cfg.APITimeout))
	}

	client, err := apiclient.New(cfg.APIBaseURL, clientOpts...)
	if err != nil {
		app.bridge.Close()
		app.closeAll()
		return nil, err
	}
	app.client = client

	app.auth = domain.NewAuthAPI(client)
	app.products = domain.NewProductsAPI(client)
	app.categories = domain.NewCategoriesAPI(client)

	app.unsubscribe = app.bus.Subscribe(event.NewHandlerFunc(app.onUnauthorized))

	return app, nil
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(cfg.AppName)}
	if cfg.Env == "production" {
		opts = []logger.Option{logger.WithProduction(cfg.AppName)}
	}
	opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)), logger.WithOutput(os.Stderr))

	switch cfg.LogFormat {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text":
		opts = append(opts, logger.WithTextFormatter())
	}
	return logger.New(opts...)
}

func (a *App) openStorage(ctx context.Context) (persist.Storage, error) {
	switch a.config.StateDriver {
	case DriverMemory:
		return persist.NewMemoryStorage(), nil

	case DriverRedis:
		client, err := redis.Connect(ctx, a.config.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client)
		a.redisCheck = redis.Healthcheck(client)
		return redis.NewStorage(client, a.config.Redis.KeyPrefix, redis.WithTTL(a.config.Redis.StateTTL)), nil

	case DriverFile, "":
		dir := a.config.StateDir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(base, a.config.AppName)
		}
		return persist.NewFileStorage(dir)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStateDriver, a.config.StateDriver)
	}
}

// onUnauthorized ends the session the failed request was made with. Only the call that
// actually ends it navigates, so concurrent 401s redirect once.
func (a *App) onUnauthorized(_ context.Context, evt apiclient.Unauthorized) error {
	if !a.store.ExpireSession(evt.Token) {
		return nil
	}
	a.logger.Warn("session expired",
		logger.Method(evt.Method),
		logger.Path(evt.Path),
		logger.RequestID(evt.RequestID),
	)
	a.navigator.Navigate(controller.RouteAuth)
	return nil
}

// Start restores the persisted session. Controllers created before Start block in their
// guard until it finishes.
func (a *App) Start(ctx context.Context) error {
	return a.bridge.Rehydrate(ctx)
}

// Close detaches the handlers and releases backend connections.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.bridge.Close()
	return a.closeAll()
}

func (a *App) closeAll() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Ready probes the state storage, the redis server when it backs the storage, and the
// API. Tokens are never sent.
func (a *App) Ready(ctx context.Context) health.Report {
	checks := []health.Check{{Name: "storage", Fn: a.probeStorage}}
	if a.redisCheck != nil {
		checks = append(checks, health.Check{Name: "redis", Fn: a.redisCheck})
	}
	checks = append(checks, health.Check{Name: "api", Fn: a.client.Ping})
	return health.Readiness(ctx, a.logger, checks...)
}

// probeStorage reads the state key. A missing or unreadable document still proves the
// backend answers.
func (a *App) probeStorage(ctx context.Context) error {
	key := a.config.StateKey
	if key == "" {
		key = persist.DefaultKey
	}
	_, err := a.storage.Get(ctx, key)
	if err == nil || errors.Is(err, persist.ErrNotFound) || errors.Is(err, persist.ErrCorrupted) {
		return nil
	}
	return err
}

// Deps returns the collaborators for the screen controllers.
func (a *App) Deps() controller.Deps {
	return controller.Deps{
		Store:      a.store,
		Auth:       a.auth,
		Products:   a.products,
		Categories: a.categories,
		Navigator:  a.navigator,
		Notifier:   a.notifier,
		Gate:       a.bridge,
		Logger:     a.logger,
	}
}

// ProductList creates the list controller with the configured page size and debounce.
func (a *App) ProductList(opts ...controller.ProductsOption) *controller.Products {
	opts = append([]controller.ProductsOption{
		controller.WithPageSize(a.config.PageSize),
		controller.WithSearchDebounce(a.config.SearchDebounce),
	}, opts...)
	return controller.NewProducts(a.Deps(), opts...)
}

func (a *App) Config() Config {
	return a.config
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) Store() *store.Store {
	return a.store
}

func (a *App) Client() *apiclient.Client {
	return a.client
}

func (a *App) Products() *domain.ProductsAPI {
	return a.products
}

func (a *App) Categories() *domain.CategoriesAPI {
	return a.categories
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithStorage(storage persist.Storage) AppOption {
	return func(app *App) error {
		if storage == nil {
			return errors.New("storage cannot be nil")
		}
		app.storage = storage
		return nil
	}
}

func WithNavigator(nav controller.Navigator) AppOption {
	return func(app *App) error {
		if nav == nil {
			return errors.New("navigator cannot be nil")
		}
		app.navigator = nav
		return nil
	}
}

func WithNotifier(n controller.Notifier) AppOption {
	return func(app *App) error {
		if n == nil {
			return errors.New("notifier cannot be nil")
		}
		app.notifier = n
		return nil
	}
}

func WithHTTPClient(hc *http.Client) AppOption {
	return func(app *App) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		app.httpClient = hc
		return nil
	}
}
