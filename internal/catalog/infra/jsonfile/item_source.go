package jsonfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/go-faster/errors"

	"github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
)

//go:embed desserts.json
var desserts []byte

// Source reads a catalog in the storefront's data.json layout:
// a JSON array of {name, price, category, image{thumbnail,mobile,tablet,desktop}}.
type Source struct {
	name string
	open func() (io.ReadCloser, error)
}

// Embedded returns the dessert catalog bundled with the binary.
func Embedded() *Source {
	return &Source{
		name: "embedded",
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(desserts)), nil
		},
	}
}

func NewFileSource(path string) *Source {
	return &Source{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Load(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := s.open()
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", s.name)
	}
	defer rc.Close()

	items, err := Decode(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", s.name)
	}
	return items, nil
}

func Decode(r io.Reader) ([]domain.Item, error) {
	var items []domain.Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return items, nil
}
