package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// sampleProducts is the fixed catalog inserted on first startup.
func sampleProducts() []Product {
	return []Product{
		{
			Name:        "Wireless Headphones",
			Description: "Premium noise-cancelling wireless headphones with 30-hour battery life",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Category:    "Electronics",
			Stock:       100,
		},
		{
			Name:        "Smart Watch",
			Description: "Fitness tracking smartwatch with heart rate monitor and GPS",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Category:    "Electronics",
			Stock:       100,
		},
		{
			Name:        "Laptop Stand",
			Description: "Ergonomic aluminum laptop stand with adjustable height",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500",
			Category:    "Accessories",
			Stock:       100,
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "RGB backlit mechanical gaming keyboard with blue switches",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500",
			Category:    "Electronics",
			Stock:       100,
		},
		{
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking",
			Price:       39.99,
			Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500",
			Category:    "Electronics",
			Stock:       100,
		},
		{
			Name:        "USB-C Hub",
			Description: "7-in-1 USB-C hub with HDMI, USB 3.0, and SD card reader",
			Price:       59.99,
			Image:       "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=500",
			Category:    "Accessories",
			Stock:       100,
		},
		{
			Name:        "Phone Case",
			Description: "Premium leather phone case with card holder",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1585792180666-f7347c490ee2?w=500",
			Category:    "Accessories",
			Stock:       100,
		},
		{
			Name:        "Portable Charger",
			Description: "20000mAh portable power bank with fast charging",
			Price:       44.99,
			Image:       "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=500",
			Category:    "Electronics",
			Stock:       100,
		},
	}
}

// Seed populates the catalog with the sample products if the table is empty.
// It is safe to call on every startup.
func (s *Store) Seed(ctx context.Context) error {
	count, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := sampleProducts()
	for _, p := range samples {
		p.ID = uuid.NewString()
		if err := s.Put(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	log.Printf("initialized %d sample products", len(samples))
	return nil
}
