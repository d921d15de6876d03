package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
)

// Entry is one cart line. Quantity is at least 1 while the entry exists.
type Entry struct {
	Item     catalog.Item
	Quantity int
}

func (e Entry) Name() string {
	return e.Item.Name
}

func (e Entry) LineTotal() decimal.Decimal {
	return e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is an immutable, ordered set of entries keyed by item name.
// Every mutating method returns a new Cart and leaves the receiver untouched.
// The zero value is an empty cart.
type Cart struct {
	entries []Entry
}

func (c Cart) indexOf(name string) int {
	for i, e := range c.entries {
		if e.Item.Name == name {
			return i
		}
	}
	return -1
}

// ApplyDelta adjusts the quantity for item by delta. A missing entry is only
// created for a positive delta; an entry whose quantity reaches zero is dropped.
func (c Cart) ApplyDelta(item catalog.Item, delta int) Cart {
	idx := c.indexOf(item.Name)
	if idx == -1 {
		if delta <= 0 {
			return c
		}
		next := make([]Entry, len(c.entries), len(c.entries)+1)
		copy(next, c.entries)
		return Cart{entries: append(next, Entry{Item: item, Quantity: delta})}
	}

	qty := max(0, c.entries[idx].Quantity+delta)
	if qty == 0 {
		return c.without(idx)
	}

	next := make([]Entry, len(c.entries))
	copy(next, c.entries)
	next[idx].Quantity = qty
	return Cart{entries: next}
}

func (c Cart) AddToCart(item catalog.Item) Cart { return c.ApplyDelta(item, 1) }
func (c Cart) Increment(item catalog.Item) Cart { return c.ApplyDelta(item, 1) }
func (c Cart) Decrement(item catalog.Item) Cart { return c.ApplyDelta(item, -1) }

func (c Cart) Remove(name string) Cart {
	idx := c.indexOf(name)
	if idx == -1 {
		return c
	}
	return c.without(idx)
}

func (c Cart) without(idx int) Cart {
	if len(c.entries) == 1 {
		return Cart{}
	}
	next := make([]Entry, 0, len(c.entries)-1)
	next = append(next, c.entries[:idx]...)
	next = append(next, c.entries[idx+1:]...)
	return Cart{entries: next}
}

func (c Cart) QuantityOf(name string) int {
	if idx := c.indexOf(name); idx != -1 {
		return c.entries[idx].Quantity
	}
	return 0
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.LineTotal())
	}
	return total
}

// Entries returns a copy of the lines in insertion order.
func (c Cart) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

func (c Cart) Len() int {
	return len(c.entries)
}

func (c Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// ItemCount is the sum of all quantities.
func (c Cart) ItemCount() int {
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// Equal compares entries position by position. Prices compare by value, so
// 5.5 and 5.50 are equal.
func (c Cart) Equal(o Cart) bool {
	if len(c.entries) != len(o.entries) {
		return false
	}
	for i := range c.entries {
		a, b := c.entries[i], o.entries[i]
		if a.Quantity != b.Quantity ||
			a.Item.Name != b.Item.Name ||
			a.Item.Category != b.Item.Category ||
			a.Item.Image != b.Item.Image ||
			!a.Item.Price.Equal(b.Item.Price) {
			return false
		}
	}
	return true
}
