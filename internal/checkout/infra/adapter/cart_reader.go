package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/dessert-cart/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/dessert-cart/internal/checkout/app"
)

type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) GetCart(ctx context.Context) ([]checkoutapp.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := r.store.Snapshot().Entries()
	items := make([]checkoutapp.CartItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, checkoutapp.CartItem{
			Name:     e.Name(),
			Quantity: e.Quantity,
		})
	}
	return items, nil
}

func (r *CartStoreReader) ResetCart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.Clear()
	return nil
}
