// Package stats computes the derived dashboard and list views over the
// product collection. Everything here is a pure function recomputed on
// every request; at catalog scale there is nothing worth caching.
package stats

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/jon4hz/productflow/internal/registry"
)

// lowStockThreshold is the dashboard's alert threshold. It is defined
// independently of the three-tier stock status below.
const lowStockThreshold = 10

// recentLimit caps the recently-updated list on the dashboard.
const recentLimit = 5

// Summary holds the dashboard's aggregate numbers.
type Summary struct {
	TotalProducts int
	TotalValue    float64
	LowStock      int
	Categories    int
}

// Summarize computes the aggregate stats over the collection.
func Summarize(products []registry.Product) Summary {
	return Summary{
		TotalProducts: len(products),
		TotalValue: lo.SumBy(products, func(p registry.Product) float64 {
			return p.Price * float64(p.Quantity)
		}),
		LowStock: lo.CountBy(products, func(p registry.Product) bool {
			return p.Quantity < lowStockThreshold
		}),
		Categories: len(Categories(products)),
	}
}

// Categories returns the distinct category labels in first-seen order.
func Categories(products []registry.Product) []string {
	return lo.Uniq(lo.Map(products, func(p registry.Product, _ int) string {
		return p.Category
	}))
}

// RecentlyUpdated returns the five most recently updated products, most
// recent first. Ties keep the original collection order.
func RecentlyUpdated(products []registry.Product) []registry.Product {
	sorted := make([]registry.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

// LowStock returns all products below the alert threshold, lowest
// quantity first. Ties keep the original collection order.
func LowStock(products []registry.Product) []registry.Product {
	low := lo.Filter(products, func(p registry.Product, _ int) bool {
		return p.Quantity < lowStockThreshold
	})
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	return low
}

// Filter returns the products matching the given text query and category.
// A product matches the query if it is a case-insensitive substring of
// the name or the description; an empty query matches everything. A
// non-empty category must match exactly. Both conditions are combined
// with AND.
func Filter(products []registry.Product, query, category string) []registry.Product {
	query = strings.ToLower(query)
	return lo.Filter(products, func(p registry.Product, _ int) bool {
		matchesQuery := query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		matchesCategory := category == "" || p.Category == category
		return matchesQuery && matchesCategory
	})
}

// StockStatus classifies a quantity into the three-tier display label.
func StockStatus(quantity int) string {
	switch {
	case quantity > 10:
		return "In Stock"
	case quantity > 5:
		return "Low Stock"
	default:
		return "Very Low"
	}
}
