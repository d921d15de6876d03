package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/dwikikusuma/dessert-cart/internal/cart/app"
	catalogapp "github.com/dwikikusuma/dessert-cart/internal/catalog/app"
	"github.com/dwikikusuma/dessert-cart/internal/catalog/infra/jsonfile"
	checkoutapp "github.com/dwikikusuma/dessert-cart/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/dessert-cart/internal/checkout/infra/adapter"

	"github.com/dwikikusuma/dessert-cart/pkg/config"
	"github.com/dwikikusuma/dessert-cart/pkg/logger"
	"github.com/dwikikusuma/dessert-cart/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background(), log)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("storefront stopped", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func catalogSource(cfg config.Config) *jsonfile.Source {
	if cfg.CatalogPath != "" {
		return jsonfile.NewFileSource(cfg.CatalogPath)
	}
	return jsonfile.Embedded()
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	src := catalogSource(cfg)
	catalogSvc, err := catalogapp.NewService(ctx, src)
	if err != nil {
		return errors.Wrap(err, "catalog")
	}
	log.Info("catalog loaded", slog.String("source", src.Name()), slog.Int("items", catalogSvc.Len()))

	// Cart
	cartStore := cartapp.NewStore(catalogSvc, log)

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartStoreReader(cartStore)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, cartReader, catalogReader, checkoutapp.Options{
		MaxConcurrent:   cfg.CheckoutMaxConcurrent,
		ClearOnNewOrder: cfg.ClearOnNewOrder,
	}, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(log, catalogSvc, cartStore, checkoutSvc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http serve")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("graceful stop timeout, forcing stop", slog.Any("err", err))
			return server.Close()
		}
		return nil
	})

	return g.Wait()
}
