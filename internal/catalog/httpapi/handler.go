package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/dessert-cart/internal/catalog/app"
	"github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
	"github.com/dwikikusuma/dessert-cart/pkg/httpx"
)

// QuantityReader reports how many of an item are in the cart, so the UI can
// pick between the add button and the quantity stepper.
type QuantityReader interface {
	QuantityOf(name string) int
}

type Handler struct {
	svc  *app.Service
	cart QuantityReader
}

func NewHandler(svc *app.Service, cart QuantityReader) *Handler {
	return &Handler{svc: svc, cart: cart}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/categories", h.categories)
	r.Get("/{name}", h.get)
	return r
}

type itemResponse struct {
	Name       string       `json:"name"`
	Category   string       `json:"category,omitempty"`
	Price      string       `json:"price"`
	PriceLabel string       `json:"price_label"`
	Image      domain.Image `json:"image"`
	Quantity   int          `json:"quantity"`
	InCart     bool         `json:"in_cart"`
}

func (h *Handler) toResponse(it domain.Item) itemResponse {
	qty := h.cart.QuantityOf(it.Name)
	return itemResponse{
		Name:       it.Name,
		Category:   it.Category,
		Price:      it.Price.StringFixed(2),
		PriceLabel: domain.FormatPrice(it.Price),
		Image:      it.Image,
		Quantity:   qty,
		InCart:     qty > 0,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items := h.svc.List(r.URL.Query().Get("q"))

	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, h.toResponse(it))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": out})
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	cats := h.svc.Categories()
	if cats == nil {
		cats = []string{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	name, err := httpx.PathParam(r, "name")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed item name")
		return
	}

	it, err := h.svc.Get(name)
	if err != nil {
		status, code, msg := mapErr(err)
		httpx.Error(w, status, code, msg)
		return
	}
	httpx.JSON(w, http.StatusOK, h.toResponse(it))
}

func mapErr(err error) (int, string, string) {
	if errors.Is(err, app.ErrNotFound) {
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}
