package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/dessert-cart/internal/cart/app"
	"github.com/dwikikusuma/dessert-cart/internal/cart/domain"
	catalog "github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
	"github.com/dwikikusuma/dessert-cart/pkg/httpx"
)

type Handler struct {
	store *app.Store
}

func NewHandler(store *app.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.get)
	r.Delete("/", h.clear)
	r.Route("/items/{name}", func(r chi.Router) {
		r.Post("/", h.adjust(1))
		r.Post("/increment", h.adjust(1))
		r.Post("/decrement", h.adjust(-1))
		r.Delete("/", h.remove)
	})
	return r
}

type entryResponse struct {
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type cartResponse struct {
	Entries    []entryResponse `json:"entries"`
	ItemCount  int             `json:"item_count"`
	Total      string          `json:"total"`
	TotalLabel string          `json:"total_label"`
	Empty      bool            `json:"empty"`
}

func toResponse(c domain.Cart) cartResponse {
	entries := c.Entries()
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse{
			Name:      e.Name(),
			Thumbnail: e.Item.Image.Thumbnail,
			Quantity:  e.Quantity,
			UnitPrice: e.Item.Price.StringFixed(2),
			LineTotal: e.LineTotal().StringFixed(2),
		})
	}

	total := c.Total()
	return cartResponse{
		Entries:    out,
		ItemCount:  c.ItemCount(),
		Total:      total.StringFixed(2),
		TotalLabel: catalog.FormatPrice(total),
		Empty:      c.IsEmpty(),
	}
}

func itemName(r *http.Request) (string, bool) {
	name, err := httpx.PathParam(r, "name")
	return name, err == nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, toResponse(h.store.Snapshot()))
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, toResponse(h.store.Clear()))
}

func (h *Handler) adjust(delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := itemName(r)
		if !ok {
			httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed item name")
			return
		}

		c, err := h.store.AdjustByName(r.Context(), name, delta)
		if err != nil {
			status, code, msg := mapErr(err)
			httpx.Error(w, status, code, msg)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(c))
	}
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	name, ok := itemName(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed item name")
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(h.store.Remove(name)))
}

func mapErr(err error) (int, string, string) {
	if errors.Is(err, app.ErrUnknownItem) {
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}
