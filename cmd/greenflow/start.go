package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenflowhq/greenflow/internal/config"
	"github.com/greenflowhq/greenflow/internal/logger"
	"github.com/greenflowhq/greenflow/internal/tui/signup"
)

var startFlags struct {
	currency string
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the signup wizard",
	Long: `Start the interactive signup wizard.

The wizard runs full screen and records every action to an in-memory
session journal. Nothing is persisted: quitting discards the session.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startFlags.currency, "currency", "c", "", "Display currency (AED, USD, EUR, GBP)")
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if startFlags.currency != "" {
		cfg.Currency = startFlags.currency
	}

	logger.Info("Starting signup wizard (currency=%s)", cfg.Currency)
	return signup.Run(cfg)
}
