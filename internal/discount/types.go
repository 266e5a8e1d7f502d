package discount

import "time"

const (
	// CodePrefix is the literal marker every generated code starts with.
	CodePrefix = "DISCOUNT"
	// Percentage is the fixed discount applied by every generated code.
	Percentage = 10.0
	// IssueEvery is the order-count multiple at which a new code is minted.
	IssueEvery = 10
)

// DiscountCode is a single-use percentage discount. A code transitions
// is_used false -> true exactly once and is never reused afterwards.
type DiscountCode struct {
	Code       string     `json:"code" dynamodbav:"code"` // PK
	Percentage float64    `json:"percentage" dynamodbav:"percentage"`
	IsUsed     bool       `json:"is_used" dynamodbav:"is_used"`
	CreatedAt  time.Time  `json:"created_at" dynamodbav:"created_at"`
	UsedAt     *time.Time `json:"used_at,omitempty" dynamodbav:"used_at,omitempty"`
}
