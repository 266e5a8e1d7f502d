package catalog

// Product is a catalog entry. Products are seeded once and read-only
// through the API; price and image are snapshotted into carts at add time.
type Product struct {
	ID          string  `json:"id" dynamodbav:"id"` // PK
	Name        string  `json:"name" dynamodbav:"name"`
	Description string  `json:"description" dynamodbav:"description"`
	Price       float64 `json:"price" dynamodbav:"price"`
	Image       string  `json:"image" dynamodbav:"image"`
	Category    string  `json:"category" dynamodbav:"category"`
	Stock       int     `json:"stock" dynamodbav:"stock"`
}
