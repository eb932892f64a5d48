package registry

import "time"

// seedCatalog is the fixed catalog a fresh installation starts with. It
// is written to the store once; afterwards the persisted collection is
// authoritative even if this list changes.
func seedCatalog() []Product {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{
			ID:          "1",
			Name:        "Wireless Bluetooth Headphones",
			Price:       199.99,
			Quantity:    45,
			Category:    "Electronics",
			Description: "High-quality wireless headphones with noise cancellation.",
			CreatedAt:   day.Add(10 * time.Hour),
			UpdatedAt:   day.Add(10 * time.Hour),
		},
		{
			ID:          "2",
			Name:        "Ergonomic Office Chair",
			Price:       299.99,
			Quantity:    12,
			Category:    "Furniture",
			Description: "Comfortable office chair with lumbar support.",
			CreatedAt:   day.Add(11 * time.Hour),
			UpdatedAt:   day.Add(11 * time.Hour),
		},
		{
			ID:          "3",
			Name:        "Stainless Steel Water Bottle",
			Price:       24.99,
			Quantity:    8,
			Category:    "Accessories",
			Description: "Insulated water bottle that keeps drinks cold for 24 hours.",
			CreatedAt:   day.Add(12 * time.Hour),
			UpdatedAt:   day.Add(12 * time.Hour),
		},
		{
			ID:          "4",
			Name:        "Gaming Mechanical Keyboard",
			Price:       149.99,
			Quantity:    23,
			Category:    "Electronics",
			Description: "RGB backlit mechanical keyboard for gaming.",
			CreatedAt:   day.Add(13 * time.Hour),
			UpdatedAt:   day.Add(13 * time.Hour),
		},
		{
			ID:          "5",
			Name:        "Yoga Exercise Mat",
			Price:       39.99,
			Quantity:    5,
			Category:    "Fitness",
			Description: "Non-slip yoga mat perfect for all types of workouts.",
			CreatedAt:   day.Add(14 * time.Hour),
			UpdatedAt:   day.Add(14 * time.Hour),
		},
	}
}
