package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jon4hz/productflow/internal/registry"
	"github.com/jon4hz/productflow/internal/session"
)

func TestProductForm_Validate(t *testing.T) {
	valid := ProductForm{
		Name:        "Desk Lamp",
		Price:       "29.99",
		Quantity:    "7",
		Category:    "Furniture",
		Description: "LED lamp.",
	}

	tests := []struct {
		name   string
		mutate func(*ProductForm)
		field  string
		want   string
	}{
		{
			name:   "valid form",
			mutate: func(f *ProductForm) {},
		},
		{
			name:   "missing name",
			mutate: func(f *ProductForm) { f.Name = "  " },
			field:  "name",
			want:   "Product name is required",
		},
		{
			name:   "missing price",
			mutate: func(f *ProductForm) { f.Price = "" },
			field:  "price",
			want:   "Price is required",
		},
		{
			name:   "non-numeric price",
			mutate: func(f *ProductForm) { f.Price = "free" },
			field:  "price",
			want:   "Price must be a positive number",
		},
		{
			name:   "zero price",
			mutate: func(f *ProductForm) { f.Price = "0" },
			field:  "price",
			want:   "Price must be a positive number",
		},
		{
			name:   "negative price",
			mutate: func(f *ProductForm) { f.Price = "-1.50" },
			field:  "price",
			want:   "Price must be a positive number",
		},
		{
			name:   "missing quantity",
			mutate: func(f *ProductForm) { f.Quantity = "" },
			field:  "quantity",
			want:   "Quantity is required",
		},
		{
			name:   "negative quantity",
			mutate: func(f *ProductForm) { f.Quantity = "-1" },
			field:  "quantity",
			want:   "Quantity must be a non-negative number",
		},
		{
			name:   "fractional quantity",
			mutate: func(f *ProductForm) { f.Quantity = "1.5" },
			field:  "quantity",
			want:   "Quantity must be a non-negative number",
		},
		{
			name:   "missing category",
			mutate: func(f *ProductForm) { f.Category = "" },
			field:  "category",
			want:   "Category is required",
		},
		{
			name:   "missing description",
			mutate: func(f *ProductForm) { f.Description = "" },
			field:  "description",
			want:   "Description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			errs := form.Validate()
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[tt.field])
		})
	}
}

func TestProductForm_ZeroQuantityIsValid(t *testing.T) {
	form := ProductForm{
		Name:        "Sold Out",
		Price:       "10",
		Quantity:    "0",
		Category:    "Misc",
		Description: "none left",
	}
	assert.Empty(t, form.Validate())
	assert.Equal(t, 0, form.Fields().Quantity)
}

func TestProductForm_Fields(t *testing.T) {
	form := ProductForm{
		Name:        "  Desk Lamp  ",
		Price:       "29.99",
		Quantity:    "7",
		Category:    " Furniture ",
		Description: " LED lamp. ",
	}

	fields := form.Fields()
	assert.Equal(t, registry.Fields{
		Name:        "Desk Lamp",
		Price:       29.99,
		Quantity:    7,
		Category:    "Furniture",
		Description: "LED lamp.",
	}, fields)
}

func TestProductForm_PatchSetsEveryField(t *testing.T) {
	form := ProductForm{
		Name:        "Desk Lamp",
		Price:       "29.99",
		Quantity:    "7",
		Category:    "Furniture",
		Description: "LED lamp.",
	}

	patch := form.Patch()
	require.NotNil(t, patch.Name)
	require.NotNil(t, patch.Price)
	require.NotNil(t, patch.Quantity)
	require.NotNil(t, patch.Category)
	require.NotNil(t, patch.Description)
	assert.Equal(t, "Desk Lamp", *patch.Name)
	assert.Equal(t, 7, *patch.Quantity)
}

func TestProfileForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    ProfileForm
		wantErr bool
	}{
		{
			name: "no password change",
			form: ProfileForm{Name: "John"},
		},
		{
			name: "matching passwords",
			form: ProfileForm{Name: "John", Password: "new", ConfirmPassword: "new"},
		},
		{
			name:    "mismatched passwords",
			form:    ProfileForm{Name: "John", Password: "new", ConfirmPassword: "other"},
			wantErr: true,
		},
		{
			name:    "empty confirmation",
			form:    ProfileForm{Name: "John", Password: "new"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantErr {
				assert.Equal(t, "Passwords do not match", errs["confirmPassword"])
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestToProductResponse_StockStatus(t *testing.T) {
	resp := ToProductResponse(registry.Product{ID: "x", Quantity: 3})
	assert.Equal(t, "Very Low", resp.StockStatus)
}

func TestToDashboardResponse(t *testing.T) {
	products := []registry.Product{
		{ID: "a", Price: 10, Quantity: 2, Category: "X"},
		{ID: "b", Price: 5, Quantity: 3, Category: "Y"},
	}

	resp := ToDashboardResponse(products)
	assert.Equal(t, 2, resp.Stats.TotalProducts)
	assert.InDelta(t, 35, resp.Stats.TotalValue, 0.0001)
	assert.Equal(t, "$35", resp.Stats.TotalValueDisplay)
	assert.Equal(t, 2, resp.Stats.LowStock)
	assert.Len(t, resp.RecentProducts, 2)
	require.Len(t, resp.LowStockAlerts, 2)
	assert.Equal(t, "a", resp.LowStockAlerts[0].ID)
}

func TestToUserResponse(t *testing.T) {
	user := &session.User{
		ID:       "1",
		Username: "manager",
		Role:     session.RoleManager,
		Name:     "John Manager",
		Email:    "john@productflow.com",
	}

	resp := ToUserResponse(user)
	assert.Equal(t, "manager", resp.Username)
	assert.Equal(t, session.RoleManager, resp.Role)
	assert.Equal(t, "John Manager", resp.Name)
}
