package storefront

import "github.com/ariefcatur/go-storefront.git/internal/catalog"

type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

func (it Item) Subtotal() float64 { return it.Price * float64(it.Quantity) }

// Cart keeps one line per product, in the order products were first added.
// The zero value is an empty cart.
type Cart struct {
	items []Item
}

// Add puts one unit of p in the cart.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
func (c *Cart) UpdateQuantity(productID int64, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Remove(productID int64) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

func (c *Cart) Clear() { c.items = nil }

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Subtotal()
	}
	return sum
}
