package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	snails = MenuItem{ID: "3", Name: "Garlic Snails", Price: 100, Image: "SnailsStarter.jpg"}
	wings  = MenuItem{ID: "4", Name: "Sticky Wings", Price: 60, Image: "StickyWingsStarter.jpg"}
	steak  = MenuItem{ID: "7", Name: "Grilled Ribeye Steak", Price: 220}
)

func TestAddSameItemTwiceMergesLine(t *testing.T) {
	t.Parallel()

	var c Cart
	c = c.Add(snails).Add(snails)
	require.Equal(t, 1, c.Len())
	require.Equal(t, 2, c.Quantity(snails.ID))
	require.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestAddDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := Cart{}.Add(snails)
	next := base.Add(snails)
	require.Equal(t, 1, base.Quantity(snails.ID))
	require.Equal(t, 2, next.Quantity(snails.ID))

	grown := base.Add(wings)
	require.Equal(t, 1, base.Len())
	require.Equal(t, 2, grown.Len())
}

func TestAddPreservesFirstAddOrder(t *testing.T) {
	t.Parallel()

	c := Cart{}.Add(wings).Add(snails).Add(steak).Add(wings)
	lines := c.Lines()
	require.Len(t, lines, 3)
	require.Equal(t, []string{"4", "3", "7"}, []string{lines[0].Item.ID, lines[1].Item.ID, lines[2].Item.ID})
	require.Equal(t, 2, lines[0].Quantity)
}

func TestCountAndTotalAcrossAdds(t *testing.T) {
	t.Parallel()

	adds := []MenuItem{snails, wings, steak, wings, snails, wings}
	var c Cart
	for _, it := range adds {
		c = c.Add(it)
	}
	require.Equal(t, len(adds), c.ItemCount())
	require.Equal(t, 3, c.Len())
	require.Equal(t, snails.Price*2+wings.Price*3+steak.Price, c.Total())
}

func TestRemoveDropsWholeLine(t *testing.T) {
	t.Parallel()

	c := Cart{}.Add(snails).Add(snails).Add(wings)
	c = c.Remove(snails.ID)
	require.Equal(t, 1, c.Len())
	require.Equal(t, 0, c.Quantity(snails.ID))
	require.Equal(t, wings.Price, c.Total())
}

func TestRemoveAbsentIsIdempotent(t *testing.T) {
	t.Parallel()

	c := Cart{}.Add(wings)
	once := c.Remove("999")
	twice := once.Remove("999")
	require.Equal(t, c.Lines(), once.Lines())
	require.Equal(t, once.Lines(), twice.Lines())
}

func TestEmptyCart(t *testing.T) {
	t.Parallel()

	var c Cart
	require.True(t, c.IsEmpty())
	require.Zero(t, c.Total())
	require.Zero(t, c.ItemCount())
	require.Empty(t, c.Lines())
	require.True(t, c.Remove("1").IsEmpty())
}

func TestSnailsAndWingsScenario(t *testing.T) {
	t.Parallel()

	c := Cart{}.Add(snails).Add(wings).Add(wings)
	require.Equal(t, 2, c.Len())
	require.Equal(t, 3, c.ItemCount())
	require.Equal(t, 220, c.Total())
	require.Equal(t, "R220", FormatPrice(c.Total()))
}

func TestPriceFormatter(t *testing.T) {
	t.Parallel()

	require.Equal(t, "R0", FormatPrice(0))
	require.Equal(t, "$95", PriceFormatter{Prefix: "$"}.Format(95))
	require.Equal(t, "1200", PriceFormatter{}.Format(1200))
}
