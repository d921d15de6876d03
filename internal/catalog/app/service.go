package app

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrNotFound       = errors.New("not found")
)

// Service is the read-only catalog provider. It is safe for concurrent use
// because nothing mutates it after NewService returns.
type Service struct {
	items  []domain.Item
	byName map[string]int
}

func NewService(ctx context.Context, src ItemSource) (*Service, error) {
	items, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}

	byName := make(map[string]int, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, errors.Wrapf(ErrInvalidCatalog, "item %d: empty name", i)
		}
		if it.Price.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidCatalog, "item %q: negative price %s", it.Name, it.Price)
		}
		if _, dup := byName[it.Name]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "duplicate item name %q", it.Name)
		}
		byName[it.Name] = i
	}

	return &Service{
		items:  append([]domain.Item(nil), items...),
		byName: byName,
	}, nil
}

func (s *Service) Get(name string) (domain.Item, error) {
	idx, ok := s.byName[name]
	if !ok {
		return domain.Item{}, errors.Wrapf(ErrNotFound, "item %q", name)
	}
	return s.items[idx], nil
}

// List returns items in catalog order. A non-empty query keeps items whose
// name or category contains it, ignoring case.
func (s *Service) List(query string) []domain.Item {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Item, 0, len(s.items))
	for _, it := range s.items {
		if query != "" &&
			!strings.Contains(strings.ToLower(it.Name), query) &&
			!strings.Contains(strings.ToLower(it.Category), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *Service) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range s.items {
		if !it.HasCategory() {
			continue
		}
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}

func (s *Service) Len() int {
	return len(s.items)
}
