// Package handler implements the view layer: stateless renderers over
// the session manager and the product registry, exposed as JSON.
package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/productflow/internal/api/models"
	"github.com/jon4hz/productflow/internal/registry"
	"github.com/jon4hz/productflow/internal/session"
	"github.com/jon4hz/productflow/internal/stats"
)

type Handler struct {
	sessions *session.Manager
	registry *registry.Registry
}

func New(sessions *session.Manager, reg *registry.Registry) *Handler {
	return &Handler{
		sessions: sessions,
		registry: reg,
	}
}

// Me returns the current user's information.
func (h *Handler) Me(c *gin.Context) {
	user := c.MustGet("user").(*session.User)
	c.JSON(http.StatusOK, models.ToUserResponse(user))
}

// ListProducts renders the product list view, filtered by the optional
// text query (q) and exact-match category. It also exposes the distinct
// category set for the filter dropdown.
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.registry.List()
	filtered := stats.Filter(products, c.Query("q"), c.Query("category"))

	c.JSON(http.StatusOK, gin.H{
		"products":   models.ToProductResponses(filtered),
		"categories": stats.Categories(products),
	})
}

// GetProduct renders a single product.
func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, models.ToProductResponse(product))
}

// CreateProduct handles a submitted product form.
func (h *Handler) CreateProduct(c *gin.Context) {
	var form models.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	product, err := h.registry.Add(form.Fields())
	if err != nil {
		log.Error("failed to add product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}
	c.JSON(http.StatusCreated, models.ToProductResponse(product))
}

// UpdateProduct handles a submitted product form for an existing record.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var form models.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	product, found, err := h.registry.Update(c.Param("id"), form.Patch())
	if err != nil {
		log.Error("failed to update product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, models.ToProductResponse(product))
}

// DeleteProduct removes a product. Deletion is idempotent: deleting an
// unknown id succeeds.
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.registry.Delete(c.Param("id")); err != nil {
		log.Error("failed to delete product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Dashboard renders the derived-metrics view.
func (h *Handler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, models.ToDashboardResponse(h.registry.List()))
}

// Profile renders the current user's profile.
func (h *Handler) Profile(c *gin.Context) {
	user := c.MustGet("user").(*session.User)
	c.JSON(http.StatusOK, models.ToUserResponse(user))
}

// UpdateProfile merges submitted profile fields into the current user.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var form models.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	err := h.sessions.UpdateUser(session.Update{
		Name:  &form.Name,
		Email: &form.Email,
		Phone: &form.Phone,
	})
	if err != nil {
		log.Error("failed to update profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, models.ToUserResponse(h.sessions.Current()))
}
