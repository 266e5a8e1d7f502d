// Package checkout implements the one piece of invariant-bearing business
// logic: turning a cart into an order, applying at most one discount code,
// and minting a new code on every nth order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/orderzen/storefront/internal/awsx"
	"github.com/orderzen/storefront/internal/cart"
	"github.com/orderzen/storefront/internal/discount"
	"github.com/orderzen/storefront/internal/orders"
)

var (
	// ErrCartNotFound signals a checkout against an unknown cart id.
	ErrCartNotFound = errors.New("cart not found")
	// ErrEmptyCart signals a checkout against a cart with no line items.
	ErrEmptyCart = errors.New("cart is empty")
)

// Request carries the checkout input after validation.
type Request struct {
	CartID        string
	CustomerName  string
	CustomerEmail string
	DiscountCode  string
}

// Processor runs the checkout sequence. Each step is one store round trip,
// best-effort sequential: there is no rollback if a later step fails.
type Processor struct {
	carts   *cart.Store
	orders  *orders.Store
	codes   *discount.Store
	metrics *awsx.Metrics
	nowFunc func() time.Time
}

// NewProcessor wires the checkout dependencies. metrics may be nil.
func NewProcessor(carts *cart.Store, orderStore *orders.Store, codes *discount.Store, metrics *awsx.Metrics) *Processor {
	return &Processor{
		carts:   carts,
		orders:  orderStore,
		codes:   codes,
		metrics: metrics,
		nowFunc: time.Now,
	}
}

// Process performs a checkout:
//
//  1. load the cart, rejecting missing or empty carts
//  2. compute the subtotal from the snapshotted line-item prices
//  3. redeem the discount code, if any, in one atomic conditional update
//  4. persist the order and delete the consumed cart
//  5. mint a new discount code when the post-insert order count is a
//     multiple of discount.IssueEvery; the minted code travels only on
//     the response, never on the stored order
func (p *Processor) Process(ctx context.Context, req Request) (*orders.Order, error) {
	c, err := p.carts.Get(ctx, req.CartID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := c.Subtotal()

	var discountAmount float64
	var appliedCode string
	if req.DiscountCode != "" {
		dc, err := p.codes.Redeem(ctx, req.DiscountCode)
		if err != nil {
			return nil, err
		}
		discountAmount = subtotal * dc.Percentage / 100
		appliedCode = dc.Code
	}

	order := orders.Order{
		ID:             uuid.NewString(),
		Items:          c.Items,
		Subtotal:       subtotal,
		DiscountCode:   appliedCode,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CreatedAt:      p.nowFunc().UTC(),
	}
	if err := p.orders.Put(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := p.carts.Delete(ctx, req.CartID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	count, err := p.orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if count%discount.IssueEvery == 0 {
		dc, err := p.codes.Issue(ctx)
		if err != nil {
			return nil, fmt.Errorf("issue discount code: %w", err)
		}
		order.GeneratedDiscountCode = dc.Code
	}

	if err := p.metrics.RecordOrder(ctx, order.Total, order.TotalQuantity()); err != nil {
		// metrics are best-effort; the order already exists
		log.Printf("record order metrics: %v", err)
	}

	return &order, nil
}
