package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/greenflowhq/greenflow/internal/logger"
	"github.com/greenflowhq/greenflow/internal/tui/theme"
)

const (
	logoText1 = "█▀▀ █▀█ █▀▀ █▀▀ █▄░█ █▀▀ █░░ █▀█ █░█░█"
	logoText2 = "█▄█ █▀▄ ██▄ ██▄ █░▀█ █▀░ █▄▄ █▄█ ▀▄▀▄▀"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "greenflow",
	Short: "Subscription onboarding wizard for the GreenFlow messaging platform",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

greenflow walks a new customer through the six-step signup flow:
account details, messaging platforms, AI features, managed support,
channels and prepaid balance, and integrations. Pricing updates live
as choices change, and checkout runs against a simulated provider.`

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(catalogCmd)
}
