// Package auth gates view access by authentication state and role and
// handles the login and logout flows.
package auth

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/productflow/internal/api/models"
	"github.com/jon4hz/productflow/internal/session"
)

// sessionUserKey marks the browser session as authenticated.
const sessionUserKey = "username"

// DefaultLanding is where authenticated users without access to a view
// are sent.
const DefaultLanding = "/products"

// Guard wires the session manager into the HTTP layer.
type Guard struct {
	sessions *session.Manager
}

// New creates a guard backed by the given session manager.
func New(m *session.Manager) *Guard {
	return &Guard{sessions: m}
}

// Login handles a credential submission. Invalid credentials are an
// expected outcome and reported inline; only internal faults become a
// generic failure.
func (g *Guard) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username and password are required"})
		return
	}

	ok, err := g.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("login failed unexpectedly", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong, please try again"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	browser := sessions.Default(c)
	browser.Set(sessionUserKey, req.Username)
	if err := browser.Save(); err != nil {
		log.Error("failed to save session cookie", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": DefaultLanding})
}

// LoginView reports whether a session is already active. Authenticated
// users are sent straight to the default landing view instead.
func (g *Guard) LoginView(c *gin.Context) {
	if g.sessions.IsAuthenticated() {
		c.Redirect(http.StatusFound, DefaultLanding)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// Logout clears the session state and the browser cookie. Logging out
// while unauthenticated is a no-op.
func (g *Guard) Logout(c *gin.Context) {
	if err := g.sessions.Logout(); err != nil {
		log.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong, please try again"})
		return
	}

	browser := sessions.Default(c)
	browser.Clear()
	if err := browser.Save(); err != nil {
		log.Error("failed to clear session cookie", "error", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

// RequireAuth redirects unauthenticated requests to the login view and
// attaches the current user to the request context otherwise.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		browser := sessions.Default(c)
		user := g.sessions.Current()
		if browser.Get(sessionUserKey) == nil || user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user", user)
	}
}

// RequireRole redirects authenticated users whose role is not in the
// given set to the default landing view. An empty set allows any
// authenticated user.
func (g *Guard) RequireRole(roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			return
		}
		user, ok := c.MustGet("user").(*session.User)
		if !ok || !slices.Contains(roles, user.Role) {
			c.Redirect(http.StatusFound, DefaultLanding)
			c.Abort()
			return
		}
	}
}
