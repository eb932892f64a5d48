// Package api wires the HTTP server: session cookies, route guard and
// view handlers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/productflow/internal/api/auth"
	"github.com/jon4hz/productflow/internal/api/handler"
	"github.com/jon4hz/productflow/internal/config"
	"github.com/jon4hz/productflow/internal/registry"
	"github.com/jon4hz/productflow/internal/session"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	guard     *auth.Guard
	handler   *handler.Handler
}

// New creates the API server on top of the given session manager and
// product registry.
func New(cfg *config.Config, sessions *session.Manager, reg *registry.Registry, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		guard:     auth.New(sessions),
		handler:   handler.New(sessions, reg),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("productflow_session", store))
}

func (s *Server) setupRoutes() {
	s.setupSession()
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	s.ginEngine.GET("/login", s.guard.LoginView)
	s.ginEngine.POST("/login", s.guard.Login)
	s.ginEngine.GET("/logout", s.guard.Logout)

	protected := s.ginEngine.Group("/")
	protected.Use(s.guard.RequireAuth())

	protected.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, auth.DefaultLanding)
	})

	api := protected.Group("/api")
	api.GET("/me", s.handler.Me)

	api.GET("/products", s.handler.ListProducts)
	api.POST("/products", s.handler.CreateProduct)
	api.GET("/products/:id", s.handler.GetProduct)
	api.PUT("/products/:id", s.handler.UpdateProduct)
	api.DELETE("/products/:id", s.handler.DeleteProduct)

	api.GET("/profile", s.handler.Profile)
	api.PUT("/profile", s.handler.UpdateProfile)
	api.POST("/profile/avatar", s.handler.UploadAvatar)

	// The dashboard is reserved for managers; everyone else lands on the
	// product list.
	dashboard := api.Group("/")
	dashboard.Use(s.guard.RequireRole(session.RoleManager))
	dashboard.GET("/dashboard", s.handler.Dashboard)
}

// Router exposes the configured routes, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.ginEngine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
