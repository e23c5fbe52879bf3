package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/themenu/internal/order"
)

func TestBuiltinShape(t *testing.T) {
	t.Parallel()

	c := Builtin()
	require.Equal(t, []string{"Starters", "Mains", "Desserts", "Beverages"}, c.Categories())
	require.Equal(t, "Starters", c.Default())
	require.Equal(t, 20, c.Len())
	for _, name := range c.Categories() {
		require.Len(t, c.Items(name), 5, name)
	}

	it, ok := c.Lookup("3")
	require.True(t, ok)
	require.Equal(t, "Garlic Snails", it.Name)
	require.Equal(t, 100, it.Price)

	cat, ok := c.CategoryOf("17")
	require.True(t, ok)
	require.Equal(t, "Beverages", cat)

	_, ok = c.Lookup("99")
	require.False(t, ok)
	require.Nil(t, c.Items("Specials"))
	require.False(t, c.Has("Specials"))
}

func TestItemsReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Builtin()
	items := c.Items("Mains")
	items[0].Price = 1
	require.Equal(t, 180, c.Items("Mains")[0].Price)
}

func TestNewRejectsBadInput(t *testing.T) {
	t.Parallel()

	item := order.MenuItem{ID: "1", Name: "Soup", Price: 10}
	cases := map[string][]Category{
		"empty name":     {{Name: "", Items: nil}},
		"dup category":   {{Name: "A"}, {Name: "A"}},
		"dup item":       {{Name: "A", Items: []order.MenuItem{item}}, {Name: "B", Items: []order.MenuItem{item}}},
		"missing id":     {{Name: "A", Items: []order.MenuItem{{Name: "x"}}}},
		"negative price": {{Name: "A", Items: []order.MenuItem{{ID: "2", Price: -1}}}},
	}
	for name, cats := range cases {
		_, err := New(cats)
		require.Error(t, err, name)
	}

	empty, err := New(nil)
	require.NoError(t, err)
	require.Equal(t, "", empty.Default())
}

func TestSearch(t *testing.T) {
	t.Parallel()

	c := Builtin()

	hits := c.Search("snails", 0)
	require.NotEmpty(t, hits)
	require.Equal(t, "Garlic Snails", hits[0].Item.Name)
	require.Equal(t, 0, hits[0].Distance)
	require.Equal(t, "Starters", hits[0].Category)

	hits = c.Search("snials", 0)
	require.NotEmpty(t, hits)
	require.Equal(t, "3", hits[0].Item.ID)

	hits = c.Search("chok", 0)
	require.GreaterOrEqual(t, len(hits), 2)
	require.Equal(t, "Chocolate Boom", hits[0].Item.Name)
	require.Equal(t, "Chocolate Cracker Mousse", hits[1].Item.Name)

	hits = c.Search("WINE", 1)
	require.Len(t, hits, 1)
	require.Equal(t, "Red Wine Selection", hits[0].Item.Name)

	require.Empty(t, c.Search("   ", 0))
	require.Empty(t, c.Search("xyzzy", 0))
}

func TestSearchShortQueriesMatchSubstringsOnly(t *testing.T) {
	t.Parallel()

	c := Builtin()
	require.Empty(t, c.Search("z", 0))
	require.Empty(t, c.Search("qq", 0))

	hits := c.Search("oc", 0)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		require.Zero(t, h.Distance)
		require.Contains(t, strings.ToLower(h.Item.Name), "oc")
	}

	// prefixes are cut by rune, so accented names do not skew the distance
	acc, err := New([]Category{{Name: "Desserts", Items: []order.MenuItem{
		{ID: "c", Name: "Crème brûlée", Price: 90},
	}}})
	require.NoError(t, err)
	hits = acc.Search("crèma", 0)
	require.Len(t, hits, 1)
	require.Equal(t, 1, hits[0].Distance)
}
