package domain

import "time"

// CartLine is one (product, quantity) pair in a cart. Price is the unit
// price snapshotted when the line was first added.
type CartLine struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Subtotal returns quantity times the snapshotted unit price.
func (l CartLine) Subtotal() int64 {
	return int64(l.Quantity) * l.Price
}

// Cart is the session-scoped, pre-purchase collection of selected
// products. Lines are insertion-ordered and unique by product id. All
// mutations are value-level; persistence is the cart store's concern.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AddLine adds quantity of a product to the cart. If the product is
// already present its quantity is incremented; otherwise a new line is
// appended with the given unit price snapshot.
func (c *Cart) AddLine(product Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			c.Lines[i].Quantity += quantity
			c.touch()
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
	})
	c.touch()
}

// SetQuantity sets a line's quantity exactly. A quantity of zero or less
// removes the line. Unknown product ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// RemoveLine removes a product's line. Removing an absent id is a no-op.
func (c *Cart) RemoveLine(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.touch()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
	c.touch()
}

// Total is the derived cart total, recomputed on every call.
func (c Cart) Total() int64 {
	var sum int64
	for _, line := range c.Lines {
		sum += line.Subtotal()
	}
	return sum
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
