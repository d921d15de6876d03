package domain

import (
	"github.com/shopspring/decimal"
)

// Image holds the responsive renditions of an item picture.
type Image struct {
	Thumbnail string `json:"thumbnail"`
	Mobile    string `json:"mobile"`
	Tablet    string `json:"tablet"`
	Desktop   string `json:"desktop"`
}

// Item is an immutable catalog record. Name is the identity.
type Item struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    Image           `json:"image"`
	Category string          `json:"category,omitempty"`
}

func (i Item) HasCategory() bool {
	return i.Category != ""
}

// FormatPrice renders an amount the way the storefront shows it, e.g. "$5.50".
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
