package models

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mergestat/timediff"
	"github.com/samber/lo"

	"github.com/jon4hz/productflow/internal/registry"
	"github.com/jon4hz/productflow/internal/session"
	"github.com/jon4hz/productflow/internal/stats"
)

// ProductResponse is a product as rendered by the API.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	StockStatus string    `json:"stockStatus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToProductResponse converts a registry product into its API shape.
func ToProductResponse(p registry.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		Description: p.Description,
		StockStatus: stats.StockStatus(p.Quantity),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a product slice, preserving order.
func ToProductResponses(products []registry.Product) []ProductResponse {
	return lo.Map(products, func(p registry.Product, _ int) ProductResponse {
		return ToProductResponse(p)
	})
}

// RecentProduct is an entry of the dashboard's recently-updated list.
type RecentProduct struct {
	ProductResponse
	UpdatedRelative string `json:"updatedRelative"`
}

// DashboardStats are the aggregate numbers of the dashboard, with a
// pre-formatted display string for the inventory value.
type DashboardStats struct {
	TotalProducts     int     `json:"totalProducts"`
	TotalValue        float64 `json:"totalValue"`
	TotalValueDisplay string  `json:"totalValueDisplay"`
	LowStock          int     `json:"lowStock"`
	Categories        int     `json:"categories"`
}

// DashboardResponse is the payload of the dashboard view.
type DashboardResponse struct {
	Stats          DashboardStats    `json:"stats"`
	RecentProducts []RecentProduct   `json:"recentProducts"`
	LowStockAlerts []ProductResponse `json:"lowStockAlerts"`
}

// ToDashboardResponse computes the full dashboard payload.
func ToDashboardResponse(products []registry.Product) DashboardResponse {
	summary := stats.Summarize(products)
	return DashboardResponse{
		Stats: DashboardStats{
			TotalProducts:     summary.TotalProducts,
			TotalValue:        summary.TotalValue,
			TotalValueDisplay: "$" + humanize.CommafWithDigits(summary.TotalValue, 2),
			LowStock:          summary.LowStock,
			Categories:        summary.Categories,
		},
		RecentProducts: lo.Map(stats.RecentlyUpdated(products), func(p registry.Product, _ int) RecentProduct {
			return RecentProduct{
				ProductResponse: ToProductResponse(p),
				UpdatedRelative: timediff.TimeDiff(p.UpdatedAt),
			}
		}),
		LowStockAlerts: ToProductResponses(stats.LowStock(products)),
	}
}

// UserResponse is the current user as rendered by the API.
type UserResponse struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Role     session.Role `json:"role"`
	Name     string       `json:"name"`
	Email    string       `json:"email,omitempty"`
	Phone    string       `json:"phone,omitempty"`
	Avatar   string       `json:"avatar,omitempty"`
}

// ToUserResponse converts a session user into its API shape.
func ToUserResponse(u *session.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
	}
}
