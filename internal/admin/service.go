package admin

import (
	"context"
	"fmt"

	"github.com/orderzen/storefront/internal/discount"
	"github.com/orderzen/storefront/internal/orders"
)

// Stats is the aggregate reporting view, recomputed from a full scan on
// every call.
type Stats struct {
	TotalOrders         int                     `json:"total_orders"`
	TotalItemsPurchased int                     `json:"total_items_purchased"`
	TotalPurchaseAmount float64                 `json:"total_purchase_amount"`
	DiscountCodes       []discount.DiscountCode `json:"discount_codes"`
	TotalDiscountAmount float64                 `json:"total_discount_amount"`
}

// NotIssuableError reports a manual issuance attempt outside the nth-order
// window, surfacing the required multiple and the current count.
type NotIssuableError struct {
	Every   int
	Current int
}

func (e *NotIssuableError) Error() string {
	return fmt.Sprintf("discount code can only be generated on every %dth order, current orders: %d", e.Every, e.Current)
}

// Service exposes the administrative operations.
type Service struct {
	orders *orders.Store
	codes  *discount.Store
}

// NewService wires the admin dependencies.
func NewService(orderStore *orders.Store, codes *discount.Store) *Service {
	return &Service{
		orders: orderStore,
		codes:  codes,
	}
}

// Stats aggregates the order and discount-code collections.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	stats := &Stats{
		TotalOrders: len(all),
	}
	for i := range all {
		stats.TotalItemsPurchased += all[i].TotalQuantity()
		stats.TotalPurchaseAmount += all[i].Total
		stats.TotalDiscountAmount += all[i].DiscountAmount
	}

	codes, err := s.codes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list discount codes: %w", err)
	}
	stats.DiscountCodes = codes

	return stats, nil
}

// GenerateDiscount manually issues a code, allowed only when the current
// order count is an exact multiple of discount.IssueEvery.
func (s *Service) GenerateDiscount(ctx context.Context) (*discount.DiscountCode, error) {
	count, err := s.orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if count%discount.IssueEvery != 0 {
		return nil, &NotIssuableError{Every: discount.IssueEvery, Current: count}
	}
	return s.codes.Issue(ctx)
}
