package app

import (
	catalog "github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
)

// ItemLookup resolves catalog items by name. The catalog service satisfies it.
type ItemLookup interface {
	Get(name string) (catalog.Item, error)
}
