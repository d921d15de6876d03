package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dwikikusuma/dessert-cart/internal/cart/domain"
	catalog "github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
)

var ErrUnknownItem = errors.New("unknown item")

// Store owns the session cart and is its only mutation surface.
// Mutations are serialized; readers always see a complete snapshot.
type Store struct {
	items  ItemLookup
	log    *slog.Logger
	tracer trace.Tracer

	mu   sync.RWMutex
	cart domain.Cart
}

func NewStore(items ItemLookup, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		items:  items,
		log:    log.With("component", "cart"),
		tracer: otel.Tracer("dessert-cart/cart"),
	}
}

func (s *Store) mutate(op, name string, fn func(domain.Cart) domain.Cart) domain.Cart {
	s.mu.Lock()
	next := fn(s.cart)
	s.cart = next
	s.mu.Unlock()

	if !s.log.Enabled(context.Background(), slog.LevelDebug) {
		return next
	}
	s.log.Debug("cart updated",
		slog.String("op", op),
		slog.String("item", name),
		slog.Int("quantity", next.QuantityOf(name)),
		slog.Int("entries", next.Len()),
		slog.String("total", next.Total().StringFixed(2)),
	)
	return next
}

func (s *Store) ApplyDelta(item catalog.Item, delta int) domain.Cart {
	return s.mutate("apply_delta", item.Name, func(c domain.Cart) domain.Cart {
		return c.ApplyDelta(item, delta)
	})
}

func (s *Store) AddToCart(item catalog.Item) domain.Cart {
	return s.mutate("add", item.Name, func(c domain.Cart) domain.Cart { return c.AddToCart(item) })
}

func (s *Store) Increment(item catalog.Item) domain.Cart {
	return s.mutate("increment", item.Name, func(c domain.Cart) domain.Cart { return c.Increment(item) })
}

func (s *Store) Decrement(item catalog.Item) domain.Cart {
	return s.mutate("decrement", item.Name, func(c domain.Cart) domain.Cart { return c.Decrement(item) })
}

func (s *Store) Remove(name string) domain.Cart {
	return s.mutate("remove", name, func(c domain.Cart) domain.Cart { return c.Remove(name) })
}

func (s *Store) Clear() domain.Cart {
	return s.mutate("clear", "", func(domain.Cart) domain.Cart { return domain.Cart{} })
}

// AdjustByName resolves name through the catalog and applies delta.
// It fails only when the catalog has no such item.
func (s *Store) AdjustByName(ctx context.Context, name string, delta int) (domain.Cart, error) {
	_, span := s.tracer.Start(ctx, "cart.adjust",
		trace.WithAttributes(
			attribute.String("item.name", name),
			attribute.Int("delta", delta),
		),
	)
	defer span.End()

	item, err := s.items.Get(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "item lookup failed")
		return s.Snapshot(), errors.Wrapf(ErrUnknownItem, "%q", name)
	}

	op := "apply_delta"
	switch delta {
	case 1:
		op = "increment"
	case -1:
		op = "decrement"
	}
	next := s.mutate(op, name, func(c domain.Cart) domain.Cart { return c.ApplyDelta(item, delta) })

	span.SetAttributes(attribute.Int("quantity", next.QuantityOf(name)))
	return next, nil
}

func (s *Store) Snapshot() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

func (s *Store) QuantityOf(name string) int {
	return s.Snapshot().QuantityOf(name)
}

func (s *Store) Total() decimal.Decimal {
	return s.Snapshot().Total()
}
