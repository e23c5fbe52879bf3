package catalog

import (
	"fmt"
	"slices"

	"github.com/jask/themenu/internal/order"
)

// Category is a named menu section in display order.
type Category struct {
	Name  string
	Items []order.MenuItem
}

// Catalog is the immutable menu, grouped by category.
type Catalog struct {
	order []string
	items map[string][]order.MenuItem
	byID  map[string]order.MenuItem
}

// New builds a catalog from categories in display order. Category names and
// item IDs must be unique.
func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		items: make(map[string][]order.MenuItem, len(categories)),
		byID:  map[string]order.MenuItem{},
	}
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("catalog: empty category name")
		}
		if _, dup := c.items[cat.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", cat.Name)
		}
		for _, it := range cat.Items {
			if it.ID == "" {
				return nil, fmt.Errorf("catalog: item %q in %s has no id", it.Name, cat.Name)
			}
			if it.Price < 0 {
				return nil, fmt.Errorf("catalog: item %s has negative price", it.ID)
			}
			if _, dup := c.byID[it.ID]; dup {
				return nil, fmt.Errorf("catalog: duplicate item id %s", it.ID)
			}
			c.byID[it.ID] = it
		}
		c.order = append(c.order, cat.Name)
		c.items[cat.Name] = slices.Clone(cat.Items)
	}
	return c, nil
}

// Categories returns category names in display order.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.order)
}

// Default is the category shown when the menu first opens.
func (c *Catalog) Default() string {
	if len(c.order) == 0 {
		return ""
	}
	return c.order[0]
}

// Has reports whether name is a known category.
func (c *Catalog) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Items returns the items of a category, or nil for unknown names.
func (c *Catalog) Items(category string) []order.MenuItem {
	return slices.Clone(c.items[category])
}

// Lookup finds an item by ID.
func (c *Catalog) Lookup(id string) (order.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// CategoryOf returns the category holding item id.
func (c *Catalog) CategoryOf(id string) (string, bool) {
	for _, name := range c.order {
		for _, it := range c.items[name] {
			if it.ID == id {
				return name, true
			}
		}
	}
	return "", false
}

// All returns every category with its items.
func (c *Catalog) All() []Category {
	out := make([]Category, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Category{Name: name, Items: slices.Clone(c.items[name])})
	}
	return out
}

// Len is the total number of items.
func (c *Catalog) Len() int { return len(c.byID) }
