package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jon4hz/productflow/internal/api"
	"github.com/jon4hz/productflow/internal/config"
	"github.com/jon4hz/productflow/internal/registry"
	"github.com/jon4hz/productflow/internal/session"
	"github.com/jon4hz/productflow/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ProductFlow server",
	Long:  `Start the ProductFlow server to manage the product catalog and serve the inventory views.`,
	Example: `productflow serve --config config.yml
productflow serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	st, err := store.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}

	sessions, err := session.NewManager(st, cfg.LoginDelay)
	if err != nil {
		log.Fatalf("failed to initialize session manager: %v", err)
	}

	reg, err := registry.New(st)
	if err != nil {
		log.Fatalf("failed to initialize product registry: %v", err)
	}

	server := api.New(cfg, sessions, reg, log.GetLevel() == log.DebugLevel)

	// Shut down gracefully on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting server", "listen", cfg.Listen)
	if err := server.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Info("server stopped")
}
