package cart

import "toolorder-be/internal/catalog"

// Line is one pending selection. UnitPrice is the catalog price snapshotted
// when the line was first added; the order builder re-prices at submission.
type Line struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// Cart is an ordered collection of lines. Every operation keeps the
// invariant that no line has quantity below 1.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges into an existing line for the same product, or appends a new
// line snapshotting the product's current price.
func (c *Cart) Add(p catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		UnitPrice: p.Price,
	})
}

// Remove drops the line for productID; no-op when absent.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity applies only when the line exists, clamping to a minimum of 1.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. Called once, right after a successful submission.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total is the sum over lines of quantity x snapshot unit price.
func (c *Cart) Total() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity * l.UnitPrice
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) find(productID string) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}
