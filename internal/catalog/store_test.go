package catalog

import (
	"context"
	"testing"

	"github.com/orderzen/storefront/internal/awstest"
)

func newTestStore() (*Store, *awstest.Dynamo) {
	fake := awstest.NewDynamo().AddTable("products", "id")
	return NewStore(fake, "products"), fake
}

func TestSeed_PopulatesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	s, fake := newTestStore()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if fake.Len("products") != 8 {
		t.Fatalf("expected 8 seeded products, got %d", fake.Len("products"))
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("first Seed error: %v", err)
	}
	first, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second Seed error: %v", err)
	}
	second, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("second Seed changed catalog size: %d -> %d", len(first), len(second))
	}
}

func TestListAndGetAgree(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed error: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("expected products from List")
	}

	// every listed product must fetch back identically by id
	for _, p := range list {
		got, err := s.Get(ctx, p.ID)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", p.ID, err)
		}
		if got == nil {
			t.Fatalf("Get(%s) returned nil for a listed product", p.ID)
		}
		if *got != p {
			t.Fatalf("Get(%s) mismatch: %+v vs %+v", p.ID, *got, p)
		}
	}
}

func TestGet_Missing(t *testing.T) {
	s, _ := newTestStore()

	got, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing product, got %+v", got)
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}

	if err := s.Put(ctx, Product{ID: "p1", Name: "Widget", Price: 1.0}); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	n, err = s.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}
