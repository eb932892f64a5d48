package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jon4hz/productflow/internal/config"
	"github.com/jon4hz/productflow/internal/store"
)

var resetCmdFlags struct {
	KeepSession bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the persisted state",
	Long:  `This command removes the persisted product collection and session so the next start begins with the seed catalog and no logged-in user.`,
	Run:   reset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetCmdFlags.KeepSession, "keep-session", false, "Only reset the product collection, keep the persisted session")

	rootCmd.AddCommand(resetCmd)
}

func reset(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	st, err := store.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}

	if err := st.Delete(store.KeyProducts); err != nil {
		log.Fatalf("failed to reset product collection: %v", err)
	}
	if !resetCmdFlags.KeepSession {
		if err := st.Delete(store.KeyUser); err != nil {
			log.Fatalf("failed to reset session: %v", err)
		}
	}

	log.Info("persisted state reset")
}
