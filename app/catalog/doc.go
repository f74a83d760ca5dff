// Package catalog is the composition root of the catalog client.
//
// NewApp reads Config from the environment (see core/config), builds the logger, the
// state storage selected by CATALOG_STATE_DRIVER, the store and its persistence bridge,
// the event bus and the HTTP adapter, and subscribes the session expiry handler:
// an unauthorized response ends the session it was made with and navigates to the
// sign-in screen exactly once. When CATALOG_STATE_SECRET is set the persisted session is
// encrypted at rest.
//
// Ready probes the state storage, Redis when it backs the state, and the API.
//
//	app, err := catalog.NewApp(catalog.WithNavigator(nav))
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	if err := app.Start(ctx); err != nil {
//		app.Logger().Warn("session not restored", logger.Error(err))
//	}
//	list := app.ProductList()
//	defer list.Close()
package catalog
