package cart

import (
	"testing"

	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(t *testing.T, id string) catalog.Product {
	t.Helper()
	p, ok := catalog.Default().Get(id)
	require.True(t, ok, "missing product %s", id)
	return p
}

func TestAddDefaultsSizeAndPricesAtAddTime(t *testing.T) {
	var c Cart
	tee := product(t, "tee")
	c.Add(tee, "")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "M", lines[0].Size)
	assert.Equal(t, 1, lines[0].Qty)
	assert.Equal(t, tee.FinalPrice(), lines[0].FinalPrice)
	assert.Equal(t, 48, lines[0].FinalPrice)
}

func TestAddSameKeyMergesIntoOneLine(t *testing.T) {
	var c Cart
	tee := product(t, "tee")
	c.Add(tee, "M")
	c.Add(tee, "M")

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Lines()[0].Qty)
	assert.Equal(t, 96, c.Total())
}

func TestAddDifferentSizeIsDistinctLine(t *testing.T) {
	var c Cart
	tee := product(t, "tee")
	c.Add(tee, "M")
	c.Add(tee, "XL")
	c.Add(product(t, "cap"), "S")

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"M", "XL", "S"}, []string{lines[0].Size, lines[1].Size, lines[2].Size})
	assert.Equal(t, 3, c.ItemCount())
}

func TestChangeQtyFloorsAtOne(t *testing.T) {
	var c Cart
	c.Add(product(t, "hoodie"), "M")
	c.ChangeQty("hoodie", "M", 3)
	assert.Equal(t, 4, c.Lines()[0].Qty)

	c.ChangeQty("hoodie", "M", -10)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Lines()[0].Qty)
}

func TestChangeQtyUnknownIsNoop(t *testing.T) {
	var c Cart
	c.Add(product(t, "hoodie"), "M")
	c.ChangeQty("hoodie", "XS", 5)
	c.ChangeQty("socks", "M", 5)
	assert.Equal(t, 1, c.Lines()[0].Qty)
}

func TestRemoveBySize(t *testing.T) {
	var c Cart
	tee := product(t, "tee")
	c.Add(tee, "M")
	c.Add(tee, "S")
	c.Remove("tee", "M")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "S", lines[0].Size)
}

func TestRemoveAllSizes(t *testing.T) {
	var c Cart
	tee := product(t, "tee")
	c.Add(tee, "M")
	c.Add(tee, "S")
	c.Add(product(t, "cap"), "M")
	c.Remove("tee", "")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "cap", lines[0].ProductID)
	assert.True(t, c.Contains("cap"))
	assert.False(t, c.Contains("tee"))
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	var c Cart
	c.Add(product(t, "cap"), "M")
	c.Remove("socks", "")
	c.Remove("cap", "XL")
	assert.Equal(t, 1, c.Len())
}

func TestTotalMatchesLineSumAcrossMutations(t *testing.T) {
	var c Cart
	steps := []func(){
		func() { c.Add(product(t, "tee"), "M") },
		func() { c.Add(product(t, "pants"), "L") },
		func() { c.ChangeQty("tee", "M", 2) },
		func() { c.Add(product(t, "jacket"), "") },
		func() { c.ChangeQty("pants", "L", -4) },
		func() { c.Remove("jacket", "") },
		func() { c.Add(product(t, "cap"), "XS") },
	}
	for _, step := range steps {
		step()
		want := 0
		for _, line := range c.Lines() {
			assert.GreaterOrEqual(t, line.Qty, 1)
			want += line.FinalPrice * line.Qty
		}
		assert.Equal(t, want, c.Total())
	}
	assert.Equal(t, 48*3+92+35, c.Total())
}

func TestLinePriceMatchesCatalog(t *testing.T) {
	var c Cart
	for _, p := range catalog.Default().List() {
		c.Add(p, "M")
	}
	for _, line := range c.Lines() {
		p := product(t, line.ProductID)
		assert.Equal(t, p.FinalPrice(), line.FinalPrice)
	}
}

func TestLinesIsCopyAndClear(t *testing.T) {
	var c Cart
	c.Add(product(t, "tee"), "M")
	lines := c.Lines()
	lines[0].Qty = 99
	assert.Equal(t, 1, c.Lines()[0].Qty)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Total())
}
