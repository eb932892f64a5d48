// Package models defines the request and response shapes of the HTTP API.
package models

import (
	"strconv"
	"strings"

	"github.com/jon4hz/productflow/internal/registry"
)

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProductForm is the submitted product form. Price and quantity arrive
// as strings so that a non-numeric entry can be reported as a
// field-scoped validation error instead of a bind failure.
type ProductForm struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Validate checks the form and returns a message per invalid field. An
// empty map means the form is valid.
func (f *ProductForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Product name is required"
	}

	if strings.TrimSpace(f.Price) == "" {
		errs["price"] = "Price is required"
	} else if price, err := strconv.ParseFloat(f.Price, 64); err != nil || price <= 0 {
		errs["price"] = "Price must be a positive number"
	}

	if strings.TrimSpace(f.Quantity) == "" {
		errs["quantity"] = "Quantity is required"
	} else if quantity, err := strconv.Atoi(f.Quantity); err != nil || quantity < 0 {
		errs["quantity"] = "Quantity must be a non-negative number"
	}

	if strings.TrimSpace(f.Category) == "" {
		errs["category"] = "Category is required"
	}

	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "Description is required"
	}

	return errs
}

// Fields converts a validated form into registry fields. It must only be
// called after Validate reported no errors.
func (f *ProductForm) Fields() registry.Fields {
	price, _ := strconv.ParseFloat(f.Price, 64)
	quantity, _ := strconv.Atoi(f.Quantity)
	return registry.Fields{
		Name:        strings.TrimSpace(f.Name),
		Price:       price,
		Quantity:    quantity,
		Category:    strings.TrimSpace(f.Category),
		Description: strings.TrimSpace(f.Description),
	}
}

// Patch converts a validated form into a full registry patch. The form
// always submits every field, so the patch sets all of them.
func (f *ProductForm) Patch() registry.Patch {
	fields := f.Fields()
	return registry.Patch{
		Name:        &fields.Name,
		Price:       &fields.Price,
		Quantity:    &fields.Quantity,
		Category:    &fields.Category,
		Description: &fields.Description,
	}
}

// ProfileForm is the submitted profile form. The password pair is only
// checked for confirmation; the static credential table is never mutated.
type ProfileForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks the profile form.
func (f *ProfileForm) Validate() map[string]string {
	errs := make(map[string]string)
	if f.Password != "" && f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}
