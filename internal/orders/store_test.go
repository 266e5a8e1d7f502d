package orders

import (
	"context"
	"testing"
	"time"

	"github.com/orderzen/storefront/internal/awstest"
	"github.com/orderzen/storefront/internal/cart"
)

func newTestStore() (*Store, *awstest.Dynamo) {
	fake := awstest.NewDynamo().AddTable("orders", "id")
	return NewStore(fake, "orders"), fake
}

func sampleOrder(id string) Order {
	return Order{
		ID: id,
		Items: []cart.LineItem{
			{ProductID: "p1", Quantity: 2, Name: "Widget", Price: 10.0},
			{ProductID: "p2", Quantity: 1, Name: "Gadget", Price: 5.0},
		},
		Subtotal:      25.0,
		Total:         25.0,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CreatedAt:     time.Now().UTC().Round(time.Second),
	}
}

func TestPutAndCount(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	for i, id := range []string{"o1", "o2", "o3"} {
		if err := s.Put(ctx, sampleOrder(id)); err != nil {
			t.Fatalf("Put error: %v", err)
		}
		n, err := s.Count(ctx)
		if err != nil {
			t.Fatalf("Count error: %v", err)
		}
		if n != i+1 {
			t.Fatalf("expected count %d, got %d", i+1, n)
		}
	}
}

func TestList_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	want := sampleOrder("o1")
	if err := s.Put(ctx, want); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got))
	}
	if got[0].ID != want.ID || got[0].Subtotal != want.Subtotal || len(got[0].Items) != 2 {
		t.Fatalf("roundtrip mismatch: %+v", got[0])
	}
}

func TestPut_GeneratedCodeNotPersisted(t *testing.T) {
	ctx := context.Background()
	s, fake := newTestStore()

	o := sampleOrder("o1")
	o.GeneratedDiscountCode = "DISCOUNTDEADBEEF"
	if err := s.Put(ctx, o); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	raw := fake.Raw("orders", "o1")
	if raw == nil {
		t.Fatal("order not stored")
	}
	if _, ok := raw["generated_discount_code"]; ok {
		t.Fatal("generated_discount_code must not be persisted")
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got[0].GeneratedDiscountCode != "" {
		t.Fatalf("generated code came back from storage: %q", got[0].GeneratedDiscountCode)
	}
}

func TestTotalQuantity(t *testing.T) {
	o := sampleOrder("o1")
	if got := o.TotalQuantity(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
