package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/dwikikusuma/dessert-cart/internal/catalog/domain"
)

func dessert(name, price string) catalog.Item {
	return catalog.Item{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: "Dessert",
		Image:    catalog.Image{Thumbnail: name + ".jpg"},
	}
}

var (
	tiramisu = dessert("Tiramisu", "5.5")
	baklava  = dessert("Baklava", "3.25")
	brownie  = dessert("Brownie", "4.50")
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestAddToEmptyCart(t *testing.T) {
	c := Cart{}.AddToCart(tiramisu)

	assert.Equal(t, 1, c.QuantityOf("Tiramisu"))
	assertDecimal(t, "5.5", c.Total())
	assert.Equal(t, 1, c.Len())
}

func TestDecrementToZeroRemovesEntry(t *testing.T) {
	c := Cart{}.ApplyDelta(tiramisu, 2)

	c = c.Decrement(tiramisu)
	assert.Equal(t, 1, c.QuantityOf("Tiramisu"))

	c = c.Decrement(tiramisu)
	assert.Equal(t, 0, c.QuantityOf("Tiramisu"))
	assert.True(t, c.IsEmpty())
	assertDecimal(t, "0", c.Total())
}

func TestTotalAcrossEntries(t *testing.T) {
	c := Cart{}.ApplyDelta(tiramisu, 2).ApplyDelta(baklava, 3)

	assertDecimal(t, "20.75", c.Total())
	assert.Equal(t, 5, c.ItemCount())
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	assertDecimal(t, "0", Cart{}.Total())
	assert.Equal(t, 0, Cart{}.ItemCount())
}

func TestMissingPriceCountsAsZero(t *testing.T) {
	c := Cart{}.ApplyDelta(catalog.Item{Name: "Sample"}, 4).ApplyDelta(brownie, 1)
	assertDecimal(t, "4.5", c.Total())
}

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name    string
		start   Cart
		item    catalog.Item
		delta   int
		wantQty int
		wantLen int
	}{
		{"absent, positive delta creates", Cart{}, tiramisu, 3, 3, 1},
		{"absent, zero delta is a no-op", Cart{}, tiramisu, 0, 0, 0},
		{"absent, negative delta is a no-op", Cart{}.AddToCart(baklava), tiramisu, -1, 0, 1},
		{"present, positive delta adds", Cart{}.ApplyDelta(tiramisu, 2), tiramisu, 5, 7, 1},
		{"present, zero delta keeps", Cart{}.ApplyDelta(tiramisu, 2), tiramisu, 0, 2, 1},
		{"present, overshoot clamps and removes", Cart{}.ApplyDelta(tiramisu, 2), tiramisu, -10, 0, 0},
		{"present, exact removal", Cart{}.ApplyDelta(tiramisu, 2).AddToCart(baklava), tiramisu, -2, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.ApplyDelta(tt.item, tt.delta)
			assert.Equal(t, tt.wantQty, got.QuantityOf(tt.item.Name))
			assert.Equal(t, tt.wantLen, got.Len())
		})
	}
}

func TestNegativeDeltaOnAbsentItemLeavesCartUnchanged(t *testing.T) {
	start := Cart{}.AddToCart(baklava)
	got := start.ApplyDelta(brownie, -1)

	assert.True(t, start.Equal(got))
	for _, e := range got.Entries() {
		assert.GreaterOrEqual(t, e.Quantity, 1)
	}
}

func TestMutationsDoNotTouchReceiver(t *testing.T) {
	start := Cart{}.ApplyDelta(tiramisu, 2).AddToCart(baklava)

	_ = start.Increment(tiramisu)
	_ = start.Decrement(baklava)
	_ = start.Remove("Tiramisu")
	_ = start.AddToCart(brownie)

	assert.Equal(t, 2, start.QuantityOf("Tiramisu"))
	assert.Equal(t, 1, start.QuantityOf("Baklava"))
	assert.Equal(t, 0, start.QuantityOf("Brownie"))
	assert.Equal(t, 2, start.Len())
}

func TestEntriesIsACopy(t *testing.T) {
	c := Cart{}.AddToCart(tiramisu)
	entries := c.Entries()
	entries[0].Quantity = 99

	assert.Equal(t, 1, c.QuantityOf("Tiramisu"))
}

func TestEntryOrderIsStable(t *testing.T) {
	c := Cart{}.AddToCart(tiramisu).AddToCart(baklava).AddToCart(brownie)
	c = c.Increment(baklava).Decrement(tiramisu).AddToCart(tiramisu)

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"Baklava", "Brownie", "Tiramisu"},
		[]string{entries[0].Name(), entries[1].Name(), entries[2].Name()})

	c = c.Increment(brownie)
	entries = c.Entries()
	assert.Equal(t, "Brownie", entries[1].Name())
	assert.Equal(t, 2, entries[1].Quantity)
}

func TestRemove(t *testing.T) {
	c := Cart{}.ApplyDelta(tiramisu, 4).AddToCart(baklava)

	once := c.Remove("Tiramisu")
	twice := once.Remove("Tiramisu")

	assert.Equal(t, 0, once.QuantityOf("Tiramisu"))
	assert.True(t, once.Equal(twice))
	assert.True(t, c.Remove("Cheesecake").Equal(c))
}

func TestLineTotal(t *testing.T) {
	e := Entry{Item: baklava, Quantity: 3}
	assertDecimal(t, "9.75", e.LineTotal())
	assert.Equal(t, "$9.75", catalog.FormatPrice(e.LineTotal()))
}

func TestEqual(t *testing.T) {
	a := Cart{}.ApplyDelta(dessert("Pie", "5"), 1)
	b := Cart{}.ApplyDelta(dessert("Pie", "5.00"), 1)
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(Cart{}))
	assert.False(t, a.Equal(a.Increment(dessert("Pie", "5"))))
	assert.False(t, a.Equal(Cart{}.ApplyDelta(dessert("Pie", "6"), 1)))

	ab := Cart{}.AddToCart(tiramisu).AddToCart(baklava)
	ba := Cart{}.AddToCart(baklava).AddToCart(tiramisu)
	assert.False(t, ab.Equal(ba))
}
