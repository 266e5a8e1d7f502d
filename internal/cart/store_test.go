package cart

import (
	"context"
	"testing"
	"time"

	"github.com/orderzen/storefront/internal/awstest"
)

func newTestStore() (*Store, *awstest.Dynamo) {
	fake := awstest.NewDynamo().AddTable("carts", "id")
	return NewStore(fake, "carts"), fake
}

func TestStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s, fake := newTestStore()

	c := New("cart-1")
	c.Add(item("p1", 2, 10.0))

	if err := s.Save(ctx, c); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if fake.Len("carts") != 1 {
		t.Fatalf("expected 1 stored cart, got %d", fake.Len("carts"))
	}

	got, err := s.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil {
		t.Fatal("expected cart, got nil")
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "p1" || got.Items[0].Quantity != 2 {
		t.Fatalf("roundtrip mismatch: %+v", got.Items)
	}

	if err := s.Delete(ctx, "cart-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	got, err = s.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Get after delete error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := newTestStore()

	got, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing cart, got %+v", got)
	}
}

func TestStore_SaveRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.nowFunc = func() time.Time { return base }

	c := New("cart-1")
	if err := s.Save(ctx, c); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	later := base.Add(time.Hour)
	s.nowFunc = func() time.Time { return later }
	if err := s.Save(ctx, c); err != nil {
		t.Fatalf("second Save error: %v", err)
	}

	got, err := s.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("expected updated_at %v, got %v", later, got.UpdatedAt)
	}
}
