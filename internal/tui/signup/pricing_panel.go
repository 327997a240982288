package signup

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/theme"
)

// PricingPanel renders the live order summary beside the wizard: itemized
// monthly lines, the one-time balance, and the payable total. It is a pure
// render over the snapshot and the totals; it holds no state but its width.
type PricingPanel struct {
	cat   *catalog.Catalog
	width int
}

// NewPricingPanel creates the pricing panel.
func NewPricingPanel(cat *catalog.Catalog) *PricingPanel {
	return &PricingPanel{cat: cat, width: 36}
}

// SetWidth updates the panel width.
func (p *PricingPanel) SetWidth(width int) {
	p.width = width
}

// View renders the order summary.
func (p *PricingPanel) View(cfg session.Configuration, totals session.Totals) string {
	t := theme.Current()
	symbol := p.cat.CurrencySymbol(cfg.Currency)
	inner := p.width - 4

	var b strings.Builder
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary)).
		Render("Order Summary")
	b.WriteString(title + "\n\n")

	line := func(label string, amount int) string {
		price := fmt.Sprintf("%s %d", symbol, amount)
		gap := inner - lipgloss.Width(label) - lipgloss.Width(price)
		if gap < 1 {
			gap = 1
		}
		return label + strings.Repeat(" ", gap) + priceStyle().Render(price)
	}

	empty := true
	for _, sel := range cfg.Platforms {
		if item, ok := p.cat.Platform(sel.CatalogID); ok {
			label := item.Label
			if sel.Quantity > 1 {
				label = fmt.Sprintf("%s ×%d", item.Label, sel.Quantity)
			}
			b.WriteString(line(label, sel.Quantity*item.UnitPrice) + "\n")
			empty = false
		}
	}
	for _, id := range cfg.Features {
		if item, ok := p.cat.Feature(id); ok {
			b.WriteString(line(item.Label, item.UnitPrice) + "\n")
			empty = false
		}
	}
	for _, id := range cfg.Support {
		if item, ok := p.cat.SupportTier(id); ok {
			b.WriteString(line(item.Label, item.UnitPrice) + "\n")
			empty = false
		}
	}
	if cfg.WhatsAppChannels > 0 {
		label := fmt.Sprintf("WhatsApp channels ×%d", cfg.WhatsAppChannels)
		b.WriteString(line(label, totals.Channel) + "\n")
		empty = false
	}
	if empty {
		b.WriteString(mutedStyle().Render("Nothing selected yet") + "\n")
	}

	b.WriteString(mutedStyle().Render(strings.Repeat("─", inner)) + "\n")
	b.WriteString(line("Monthly subtotal", totals.Subtotal) + "\n")
	b.WriteString(line("Prepaid balance", totals.Balance) + "\n")
	b.WriteString(mutedStyle().Render(strings.Repeat("─", inner)) + "\n")

	totalLabel := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(t.FgBright)).Render("Due today")
	totalPrice := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(t.Success)).
		Render(fmt.Sprintf("%s %d", symbol, totals.Total))
	gap := inner - lipgloss.Width("Due today") - lipgloss.Width(fmt.Sprintf("%s %d", symbol, totals.Total))
	if gap < 1 {
		gap = 1
	}
	b.WriteString(totalLabel + strings.Repeat(" ", gap) + totalPrice + "\n")

	return lipgloss.NewStyle().
		Width(p.width).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault)).
		Render(b.String())
}
