package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/dwikikusuma/dessert-cart/internal/cart/app"
	catalogapp "github.com/dwikikusuma/dessert-cart/internal/catalog/app"
	"github.com/dwikikusuma/dessert-cart/internal/catalog/infra/jsonfile"
	"github.com/dwikikusuma/dessert-cart/internal/checkout/app"
	"github.com/dwikikusuma/dessert-cart/internal/checkout/infra/adapter"
)

var confirmID = uuid.MustParse("0b5e2f8a-1c4d-4e6f-8a9b-c0d1e2f3a4b5")

func newTestHandler(t *testing.T, clear bool) (http.Handler, *cartapp.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog, err := catalogapp.NewService(context.Background(), jsonfile.Embedded())
	require.NoError(t, err)
	store := cartapp.NewStore(catalog, log)
	reader := adapter.NewCartStoreReader(store)

	svc := app.NewService(reader, reader, adapter.NewCatalogServiceReader(catalog), app.Options{
		ClearOnNewOrder: clear,
		Now:             func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) },
		NewID:           func() uuid.UUID { return confirmID },
	}, log)
	return NewHandler(svc).Routes(), store
}

func post(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
	return rec
}

func TestConfirm(t *testing.T) {
	h, store := newTestHandler(t, false)
	ctx := context.Background()
	_, err := store.AdjustByName(ctx, "Classic Tiramisu", 2)
	require.NoError(t, err)
	_, err = store.AdjustByName(ctx, "Macaron Mix of Five", 1)
	require.NoError(t, err)

	rec := post(h, "/confirm")
	require.Equal(t, http.StatusOK, rec.Code)

	var body confirmationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, confirmID.String(), body.ID)
	assert.Equal(t, "2026-10-15T09:30:00Z", body.ConfirmedAt)
	require.Len(t, body.Lines, 2)
	assert.Equal(t, "Classic Tiramisu", body.Lines[0].Name)
	assert.Equal(t, "11.00", body.Lines[0].LineTotal)
	assert.Equal(t, "8.00", body.Lines[1].UnitPrice)
	assert.Equal(t, 3, body.ItemCount)
	assert.Equal(t, "19.00", body.Total)
	assert.Equal(t, "$19.00", body.TotalLabel)

	assert.Equal(t, 2, store.QuantityOf("Classic Tiramisu"))
}

func TestConfirmEmptyCart(t *testing.T) {
	h, _ := newTestHandler(t, false)

	rec := post(h, "/confirm")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"EMPTY_CART"`)
}

func TestNewOrder(t *testing.T) {
	t.Run("keeps cart", func(t *testing.T) {
		h, store := newTestHandler(t, false)
		_, err := store.AdjustByName(context.Background(), "Lemon Meringue Pie", 1)
		require.NoError(t, err)

		rec := post(h, "/new-order")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"cleared":false}`, rec.Body.String())
		assert.Equal(t, 1, store.QuantityOf("Lemon Meringue Pie"))
	})

	t.Run("clears cart", func(t *testing.T) {
		h, store := newTestHandler(t, true)
		_, err := store.AdjustByName(context.Background(), "Lemon Meringue Pie", 1)
		require.NoError(t, err)

		rec := post(h, "/new-order")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"cleared":true}`, rec.Body.String())
		assert.True(t, store.Snapshot().IsEmpty())
	})
}

func TestMapErr(t *testing.T) {
	status, code, _ := mapErr(app.ErrEmptyCart)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMPTY_CART", code)

	status, code, _ = mapErr(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", code)
}
