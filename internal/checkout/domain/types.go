package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Line struct {
	Name      string
	Thumbnail string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Confirmation is the order snapshot shown in the confirmation view.
// It does not track the cart after it is taken.
type Confirmation struct {
	ID          uuid.UUID
	Lines       []Line
	Total       decimal.Decimal
	ConfirmedAt time.Time
}

func (c Confirmation) ItemCount() int {
	n := 0
	for _, ln := range c.Lines {
		n += ln.Quantity
	}
	return n
}
