package orders

import (
	"time"

	"github.com/orderzen/storefront/internal/cart"
)

// Order is the immutable record of a completed checkout. Line items are
// copied from the cart at checkout time and decoupled from later product
// or cart changes.
type Order struct {
	ID             string          `json:"id" dynamodbav:"id"` // PK
	Items          []cart.LineItem `json:"items" dynamodbav:"items"`
	Subtotal       float64         `json:"subtotal" dynamodbav:"subtotal"`
	DiscountCode   string          `json:"discount_code,omitempty" dynamodbav:"discount_code,omitempty"`
	DiscountAmount float64         `json:"discount_amount" dynamodbav:"discount_amount"`
	Total          float64         `json:"total" dynamodbav:"total"`
	CustomerName   string          `json:"customer_name" dynamodbav:"customer_name"`
	CustomerEmail  string          `json:"customer_email" dynamodbav:"customer_email"`
	CreatedAt      time.Time       `json:"created_at" dynamodbav:"created_at"`

	// GeneratedDiscountCode is set on the response when this checkout was
	// the one that minted a new code. It is never persisted.
	GeneratedDiscountCode string `json:"generated_discount_code,omitempty" dynamodbav:"-"`
}

// TotalQuantity sums the quantities of all line items.
func (o *Order) TotalQuantity() int {
	var n int
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
