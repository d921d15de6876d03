package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	cartapp "github.com/dwikikusuma/dessert-cart/internal/cart/app"
	carthttp "github.com/dwikikusuma/dessert-cart/internal/cart/httpapi"
	catalogapp "github.com/dwikikusuma/dessert-cart/internal/catalog/app"
	cataloghttp "github.com/dwikikusuma/dessert-cart/internal/catalog/httpapi"
	checkoutapp "github.com/dwikikusuma/dessert-cart/internal/checkout/app"
	checkouthttp "github.com/dwikikusuma/dessert-cart/internal/checkout/httpapi"
	"github.com/dwikikusuma/dessert-cart/pkg/httpx"
)

func newRouter(log *slog.Logger, catalog *catalogapp.Service, cart *cartapp.Store, checkout *checkoutapp.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpx.RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(r chi.Router) {
		r.Mount("/catalog", cataloghttp.NewHandler(catalog, cart).Routes())
		r.Mount("/cart", carthttp.NewHandler(cart).Routes())
		r.Mount("/checkout", checkouthttp.NewHandler(checkout).Routes())
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	return r
}
