package validation

// AddToCartRequest is the payload for POST /api/cart/add. A missing cart_id
// creates a fresh cart; a missing quantity defaults to 1.
type AddToCartRequest struct {
	CartID    string `json:"cart_id,omitempty"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// CheckoutRequest is the payload for POST /api/checkout.
type CheckoutRequest struct {
	CartID        string `json:"cart_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	DiscountCode  string `json:"discount_code,omitempty"`
}
