// Package store holds the client state of the catalog: session, product and category
// collections, pagination and UI flags.
//
// A Store is created with New and passed to whoever needs it. State changes only through
// named transitions; each is synchronous and notifies listeners registered with Subscribe,
// in transition order, with copies of the state before and after.
//
// Concurrent queries are reconciled with generations. BeginFetch hands out a generation
// per Kind and the Apply/FailFetch transitions accept a response only when its generation
// is still the latest, so a slow response cannot overwrite a newer one:
//
//	gen := st.BeginFetch(store.KindProducts)
//	list, err := products.Search(ctx, q)
//	if err != nil {
//		st.FailFetch(store.KindProducts, gen, msg)
//		return
//	}
//	st.ApplyProducts(gen, list, nil)
//
// ExpireSession ends a session only if the given token is still active, which makes
// repeated unauthorized responses idempotent.
package store
