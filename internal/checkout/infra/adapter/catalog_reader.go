package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/dessert-cart/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/dessert-cart/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, name string) (checkoutapp.Product, error) {
	if err := ctx.Err(); err != nil {
		return checkoutapp.Product{}, err
	}

	it, err := r.svc.Get(name)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		Name:      it.Name,
		Thumbnail: it.Image.Thumbnail,
		Price:     it.Price,
	}, nil
}
