package models

// CartLine is one product's entry in the current order. UnitPrice and the
// display fields are denormalized copies taken when the product was added.
type CartLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	ImageURL    string  `json:"image_url"`
}

// Cart is an insertion-ordered list of lines, at most one per product.
// All mutating operations are pure: they return the next state and leave the
// receiver untouched, so persistence can happen strictly after a committed
// transition.
type Cart struct {
	Lines []CartLine
}

func (c Cart) clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// Add merges the product into an existing line or appends a new one with
// quantity 1. TotalPrice is recomputed on the same path as Quantity.
func (c Cart) Add(product Product) Cart {
	next := c.clone()
	for i, line := range next.Lines {
		if line.ProductID == product.ID {
			next.Lines[i].Quantity = line.Quantity + 1
			next.Lines[i].TotalPrice = float64(line.Quantity+1) * line.UnitPrice
			return next
		}
	}
	next.Lines = append(next.Lines, CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
		UnitPrice:   product.Price,
		TotalPrice:  product.Price,
		ImageURL:    product.ImageURL,
	})
	return next
}

// Remove drops the matching line; unknown ids are a no-op.
func (c Cart) Remove(productID string) Cart {
	next := Cart{Lines: make([]CartLine, 0, len(c.Lines))}
	for _, line := range c.Lines {
		if line.ProductID != productID {
			next.Lines = append(next.Lines, line)
		}
	}
	return next
}

// WithQuantity sets the matching line's quantity and recomputes its total.
// Callers redirect quantity <= 0 to Remove before getting here.
func (c Cart) WithQuantity(productID string, quantity int) Cart {
	next := c.clone()
	for i, line := range next.Lines {
		if line.ProductID == productID {
			next.Lines[i].Quantity = quantity
			next.Lines[i].TotalPrice = float64(quantity) * line.UnitPrice
		}
	}
	return next
}

func (c Cart) Clear() Cart {
	return Cart{Lines: []CartLine{}}
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Find returns the line for productID, if any.
func (c Cart) Find(productID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

// TotalItems is the sum of quantities across lines.
func (c Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of line totals.
func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.TotalPrice
	}
	return total
}

// QuantityOf returns the matching line's quantity, or 0.
func (c Cart) QuantityOf(productID string) int {
	if line, ok := c.Find(productID); ok {
		return line.Quantity
	}
	return 0
}
