package cart

import "testing"

func item(productID string, qty int, price float64) LineItem {
	return LineItem{
		ProductID: productID,
		Quantity:  qty,
		Name:      "product " + productID,
		Price:     price,
		Image:     "https://example.com/" + productID + ".jpg",
	}
}

func TestAdd_MergesSameProduct(t *testing.T) {
	c := New("cart-1")

	c.Add(item("p1", 2, 10.0))
	c.Add(item("p1", 3, 10.0))

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Items[0].Quantity)
	}
}

func TestAdd_KeepsFirstSnapshot(t *testing.T) {
	c := New("cart-1")

	first := item("p1", 1, 10.0)
	c.Add(first)

	// a later add with a different price must not overwrite the snapshot
	changed := item("p1", 1, 99.0)
	changed.Name = "renamed"
	c.Add(changed)

	if c.Items[0].Price != 10.0 {
		t.Fatalf("snapshot price changed: %v", c.Items[0].Price)
	}
	if c.Items[0].Name != first.Name {
		t.Fatalf("snapshot name changed: %v", c.Items[0].Name)
	}
}

func TestAdd_DistinctProducts(t *testing.T) {
	c := New("cart-1")

	c.Add(item("p1", 1, 10.0))
	c.Add(item("p2", 2, 5.0))

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(c.Items))
	}
}

func TestRemove(t *testing.T) {
	c := New("cart-1")
	c.Add(item("p1", 1, 10.0))
	c.Add(item("p2", 2, 5.0))

	c.Remove("p1")
	if len(c.Items) != 1 || c.Items[0].ProductID != "p2" {
		t.Fatalf("unexpected items after remove: %+v", c.Items)
	}

	// removing an absent product is a no-op
	c.Remove("p9")
	if len(c.Items) != 1 {
		t.Fatalf("remove of absent product changed cart: %+v", c.Items)
	}
}

func TestSetQuantity_Replaces(t *testing.T) {
	c := New("cart-1")
	c.Add(item("p1", 2, 10.0))

	c.SetQuantity("p1", 7)

	if c.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", c.Items[0].Quantity)
	}
}

func TestSetQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		c := New("cart-1")
		c.Add(item("p1", 2, 10.0))

		c.SetQuantity("p1", qty)

		if len(c.Items) != 0 {
			t.Fatalf("quantity %d: expected empty cart, got %+v", qty, c.Items)
		}
	}
}

func TestSetQuantity_AbsentProductIsNoop(t *testing.T) {
	c := New("cart-1")
	c.Add(item("p1", 2, 10.0))

	c.SetQuantity("p9", 4)

	if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
		t.Fatalf("set on absent product changed cart: %+v", c.Items)
	}
}

func TestSubtotal(t *testing.T) {
	c := New("cart-1")
	c.Add(item("p1", 2, 10.0))
	c.Add(item("p2", 1, 5.0))

	if got := c.Subtotal(); got != 25.0 {
		t.Fatalf("expected subtotal 25.0, got %v", got)
	}
}
