package order

import "slices"

// MenuItem is a dish or drink offered on the menu. Price is in whole
// currency units.
type MenuItem struct {
	ID          string
	Name        string
	Price       int
	Description string
	Image       string
}

// CartLine pairs a menu item with how many of it were ordered.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// Subtotal is price times quantity for the line.
func (l CartLine) Subtotal() int {
	return l.Item.Price * l.Quantity
}

// Cart holds at most one line per item ID, in first-add order. The zero value
// is an empty cart. Add and Remove return a new Cart and leave the receiver
// untouched.
type Cart struct {
	lines []CartLine
}

// Add returns a cart with item's quantity incremented, appending a new line
// when the item is not yet present.
func (c Cart) Add(item MenuItem) Cart {
	lines := slices.Clone(c.lines)
	for i := range lines {
		if lines[i].Item.ID == item.ID {
			lines[i].Quantity++
			return Cart{lines: lines}
		}
	}
	return Cart{lines: append(lines, CartLine{Item: item, Quantity: 1})}
}

// Remove returns a cart without the line for itemID. Unknown IDs are a no-op.
func (c Cart) Remove(itemID string) Cart {
	lines := make([]CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		if l.Item.ID != itemID {
			lines = append(lines, l)
		}
	}
	return Cart{lines: lines}
}

// Total sums price times quantity over all lines.
func (c Cart) Total() int {
	total := 0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount sums quantities, so one line of three counts as 3.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Quantity reports how many of itemID are in the cart.
func (c Cart) Quantity(itemID string) int {
	for _, l := range c.lines {
		if l.Item.ID == itemID {
			return l.Quantity
		}
	}
	return 0
}

func (c Cart) Len() int { return len(c.lines) }

func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the cart lines.
func (c Cart) Lines() []CartLine { return slices.Clone(c.lines) }
