package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/dessert-cart/internal/checkout/domain"
)

type CartItem struct {
	Name     string
	Quantity int
}

type CartReader interface {
	GetCart(ctx context.Context) ([]CartItem, error)
}

type CartResetter interface {
	ResetCart(ctx context.Context) error
}

type Product struct {
	Name      string
	Thumbnail string
	Price     decimal.Decimal
}

type CatalogReader interface {
	GetProduct(ctx context.Context, name string) (Product, error)
}

var ErrEmptyCart = errors.New("cart is empty")

type Options struct {
	MaxConcurrent int
	// ClearOnNewOrder makes StartNewOrder empty the cart. Off by default:
	// starting a new order only dismisses the confirmation.
	ClearOnNewOrder bool
	Now             func() time.Time
	NewID           func() uuid.UUID
}

type Service struct {
	Cart    CartReader
	Reset   CartResetter
	Catalog CatalogReader

	opts   Options
	log    *slog.Logger
	tracer trace.Tracer
}

func NewService(cart CartReader, reset CartResetter, catalog CatalogReader, opts Options, log *slog.Logger) *Service {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 10
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.New
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		Cart:    cart,
		Reset:   reset,
		Catalog: catalog,
		opts:    opts,
		log:     log.With("component", "checkout"),
		tracer:  otel.Tracer("dessert-cart/checkout"),
	}
}

// Confirm snapshots the cart into a Confirmation priced from the catalog.
// The cart itself is left as it is.
func (s *Service) Confirm(ctx context.Context) (domain.Confirmation, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.confirm")
	defer span.End()

	conf, err := s.confirm(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "confirm failed")
		return domain.Confirmation{}, err
	}

	span.SetAttributes(
		attribute.String("confirmation.id", conf.ID.String()),
		attribute.Int("confirmation.lines", len(conf.Lines)),
		attribute.String("confirmation.total", conf.Total.StringFixed(2)),
	)
	s.log.Info("order confirmed",
		slog.String("id", conf.ID.String()),
		slog.Int("lines", len(conf.Lines)),
		slog.Int("items", conf.ItemCount()),
		slog.String("total", conf.Total.StringFixed(2)),
	)
	return conf, nil
}

func (s *Service) confirm(ctx context.Context) (domain.Confirmation, error) {
	items, err := s.Cart.GetCart(ctx)
	if err != nil {
		return domain.Confirmation{}, err
	}

	if len(items) == 0 {
		return domain.Confirmation{}, ErrEmptyCart
	}

	lines := make([]domain.Line, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return errors.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.Name)
			if err != nil {
				return errors.Wrapf(err, "get product %q", it.Name)
			}

			lines[idx] = domain.Line{
				Name:      product.Name,
				Thumbnail: product.Thumbnail,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Confirmation{}, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}

	return domain.Confirmation{
		ID:          s.opts.NewID(),
		Lines:       lines,
		Total:       total,
		ConfirmedAt: s.opts.Now().UTC(),
	}, nil
}

// StartNewOrder closes out a confirmation. It reports whether the cart was cleared.
func (s *Service) StartNewOrder(ctx context.Context) (bool, error) {
	if !s.opts.ClearOnNewOrder || s.Reset == nil {
		s.log.Info("new order started", slog.Bool("cleared", false))
		return false, nil
	}
	if err := s.Reset.ResetCart(ctx); err != nil {
		return false, errors.Wrap(err, "reset cart")
	}
	s.log.Info("new order started", slog.Bool("cleared", true))
	return true, nil
}
