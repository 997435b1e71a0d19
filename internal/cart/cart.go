package cart

// Item is one line of a shopper's cart. Price is the unit price captured at
// add time; MaxStock, when set, caps the quantity.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Qty      int    `json:"qty"`
	Image    string `json:"image,omitempty"`
	Unit     string `json:"unit,omitempty"`
	MaxStock *int   `json:"maxStock,omitempty"`
}

// Cart is a keyed collection of line items in insertion order. All mutations
// are total functions: unknown ids and invalid input are ignored rather than
// reported, the right behavior for a single-shopper cart where every
// operation must leave a usable state.
type Cart struct {
	Items []Item `json:"items"`
}

func (c *Cart) index(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// clampQty bounds qty to [1, maxStock].
func clampQty(qty int, maxStock *int) int {
	if qty < 1 {
		qty = 1
	}
	if maxStock != nil && qty > *maxStock {
		qty = *maxStock
	}
	return qty
}

// AddItem inserts the item with qty clamped to [1, maxStock]. Items with an
// empty id or negative price are ignored; an existing id is a no-op
// (callers increment instead).
func (c *Cart) AddItem(item Item) {
	if item.ID == "" || item.Price < 0 {
		return
	}
	if c.index(item.ID) >= 0 {
		return
	}
	item.Qty = clampQty(item.Qty, item.MaxStock)
	c.Items = append(c.Items, item)
}

// IncrementQty adds one, never exceeding MaxStock. No-op if id is absent.
func (c *Cart) IncrementQty(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.Items[i].Qty = clampQty(c.Items[i].Qty+1, c.Items[i].MaxStock)
}

// DecrementQty subtracts one with a floor of 1; it never removes the line.
// Deletion is only ever explicit via RemoveItem.
func (c *Cart) DecrementQty(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if c.Items[i].Qty > 1 {
		c.Items[i].Qty--
	}
}

// RemoveItem deletes the line unconditionally.
func (c *Cart) RemoveItem(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Qty
	}
	return total
}

// TotalPrice is Σ(price × qty), recomputed in full on every call.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, it := range c.Items {
		total += it.Price * it.Qty
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemQty returns the quantity for id, 0 when absent.
func (c *Cart) ItemQty(id string) int {
	i := c.index(id)
	if i < 0 {
		return 0
	}
	return c.Items[i].Qty
}

// Snapshot returns a deep copy of the line items, so callers building an
// order payload are isolated from later cart mutations.
func (c *Cart) Snapshot() []Item {
	out := make([]Item, len(c.Items))
	copy(out, c.Items)
	for i := range out {
		if out[i].MaxStock != nil {
			v := *out[i].MaxStock
			out[i].MaxStock = &v
		}
	}
	return out
}
