// Package storefront is the shopper-facing side: store selection, the cart
// and checkout payment details.
package storefront

import "github.com/ariefcatur/go-storefront.git/internal/catalog"

// Select resolves the store a shopper asked for (the ?store= parameter).
// Unknown or empty ids fall back to the default store, then to the first
// store id. ok is false only for an empty catalog.
func Select(c catalog.Catalog, storeID string) (st catalog.StoreConfig, resolved string, ok bool) {
	if s, found := c[storeID]; found && storeID != "" {
		return s, storeID, true
	}
	if s, found := c[catalog.DefaultStoreID]; found {
		return s, catalog.DefaultStoreID, true
	}
	if ids := c.IDs(); len(ids) > 0 {
		return c[ids[0]], ids[0], true
	}
	return catalog.StoreConfig{}, "", false
}
