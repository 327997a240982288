package main

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
	"github.com/spf13/cobra"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product catalog with current pricing",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat := catalog.Default()
	md := catalogMarkdown(cat, cat.CurrencySymbol(cfg.Currency))

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Plain markdown still reads fine
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	rendered, err := r.Render(md)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// catalogMarkdown renders the catalog as a markdown document.
func catalogMarkdown(cat *catalog.Catalog, symbol string) string {
	var b strings.Builder

	b.WriteString("# GreenFlow Catalog\n\n")

	section := func(title string, items []catalog.Item, perUnit string) {
		b.WriteString("## " + title + "\n\n")
		for _, item := range items {
			fmt.Fprintf(&b, "- **%s**: %s %d%s\n", item.Label, symbol, item.UnitPrice, perUnit)
		}
		b.WriteString("\n")
	}

	section("Messaging Platforms", cat.Platforms, "/mo per seat")
	section("AI Features", cat.Features, "/mo")
	section("Managed Support", cat.Support, "/mo")

	fmt.Fprintf(&b, "## WhatsApp Channels\n\n- **Additional channel**: %s %d/mo each\n\n",
		symbol, catalog.WhatsAppChannelUnitPrice)

	b.WriteString("## Integrations\n\nIncluded with every plan.\n\n")
	for _, category := range cat.Integrations {
		names := make([]string, len(category.Items))
		for i, item := range category.Items {
			names[i] = item.Name
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", category.Title, strings.Join(names, ", "))
	}

	return b.String()
}
