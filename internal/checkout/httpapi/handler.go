package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	catalog "github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
	"github.com/dwikikusuma/dessert-cart/internal/checkout/app"
	"github.com/dwikikusuma/dessert-cart/internal/checkout/domain"
	"github.com/dwikikusuma/dessert-cart/pkg/httpx"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/confirm", h.confirm)
	r.Post("/new-order", h.newOrder)
	return r
}

type lineResponse struct {
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type confirmationResponse struct {
	ID          string         `json:"id"`
	Lines       []lineResponse `json:"lines"`
	ItemCount   int            `json:"item_count"`
	Total       string         `json:"total"`
	TotalLabel  string         `json:"total_label"`
	ConfirmedAt string         `json:"confirmed_at"`
}

func toResponse(c domain.Confirmation) confirmationResponse {
	lines := make([]lineResponse, 0, len(c.Lines))
	for _, ln := range c.Lines {
		lines = append(lines, lineResponse{
			Name:      ln.Name,
			Thumbnail: ln.Thumbnail,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice.StringFixed(2),
			LineTotal: ln.LineTotal.StringFixed(2),
		})
	}

	return confirmationResponse{
		ID:          c.ID.String(),
		Lines:       lines,
		ItemCount:   c.ItemCount(),
		Total:       c.Total.StringFixed(2),
		TotalLabel:  catalog.FormatPrice(c.Total),
		ConfirmedAt: c.ConfirmedAt.Format(time.RFC3339),
	}
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	conf, err := h.svc.Confirm(r.Context())
	if err != nil {
		status, code, msg := mapErr(err)
		httpx.Error(w, status, code, msg)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(conf))
}

func (h *Handler) newOrder(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.svc.StartNewOrder(r.Context())
	if err != nil {
		status, code, msg := mapErr(err)
		httpx.Error(w, status, code, msg)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"cleared": cleared})
}

func mapErr(err error) (int, string, string) {
	if errors.Is(err, app.ErrEmptyCart) {
		return http.StatusConflict, "EMPTY_CART", "cart is empty"
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}
