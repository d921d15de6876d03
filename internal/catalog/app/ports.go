package app

import (
	"context"

	"github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
)

// ItemSource yields the static catalog once, at startup.
type ItemSource interface {
	Load(ctx context.Context) ([]domain.Item, error)
}
