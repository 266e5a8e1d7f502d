package cart

import "time"

// LineItem is one product entry in a cart. Name, price and image are
// snapshotted from the product at add time and never re-synced.
type LineItem struct {
	ProductID string  `json:"product_id" dynamodbav:"product_id"`
	Quantity  int     `json:"quantity" dynamodbav:"quantity"`
	Name      string  `json:"name" dynamodbav:"name"`
	Price     float64 `json:"price" dynamodbav:"price"`
	Image     string  `json:"image" dynamodbav:"image"`
}

// Cart is the shopping-cart document. It holds at most one line item per
// product id; the cart is deleted when a checkout consumes it.
type Cart struct {
	ID        string     `json:"id" dynamodbav:"id"` // PK
	Items     []LineItem `json:"items" dynamodbav:"items"`
	CreatedAt time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// New returns an empty cart with the given id.
func New(id string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        id,
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add merges a line item into the cart. If an item for the same product id
// already exists its quantity is incremented; the stored snapshot fields are
// kept from the first add.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove drops the line item for productID. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	items := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	c.Items = items
}

// SetQuantity replaces the quantity for productID. A quantity of zero or
// less removes the item. Setting an absent product is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return
		}
	}
}

// Subtotal sums price * quantity over the snapshotted line items.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
