package session

import (
	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/logger"
)

// Totals is the itemized cost derived from a configuration. All amounts are
// integers in the account currency. Balance is a deposit being purchased, so
// it adds to the total rather than discounting it.
type Totals struct {
	Platform int `json:"platform"`
	Feature  int `json:"feature"`
	Support  int `json:"support"`
	Channel  int `json:"channel"`
	Subtotal int `json:"subtotal"`
	Balance  int `json:"balance"`
	Total    int `json:"total"`
}

// Compute derives the itemized totals for a configuration. It is pure,
// deterministic, and order-independent. Ids missing from the catalog
// contribute zero cost; the reference behavior treats stale references as
// benign, so they are logged at debug level and never error.
func Compute(cfg Configuration, cat *catalog.Catalog) Totals {
	var t Totals

	for _, sel := range cfg.Platforms {
		item, ok := cat.Platform(sel.CatalogID)
		if !ok {
			logger.Debug("pricing: unknown platform id %q, counting zero", sel.CatalogID)
			continue
		}
		t.Platform += item.UnitPrice * sel.Quantity
	}

	for _, id := range cfg.Features {
		item, ok := cat.Feature(id)
		if !ok {
			logger.Debug("pricing: unknown feature id %q, counting zero", id)
			continue
		}
		t.Feature += item.UnitPrice
	}

	for _, id := range cfg.Support {
		item, ok := cat.SupportTier(id)
		if !ok {
			logger.Debug("pricing: unknown support id %q, counting zero", id)
			continue
		}
		t.Support += item.UnitPrice
	}

	t.Channel = cfg.WhatsAppChannels * catalog.WhatsAppChannelUnitPrice
	t.Subtotal = t.Platform + t.Feature + t.Support + t.Channel
	t.Balance = cfg.Balance
	t.Total = t.Subtotal + t.Balance
	return t
}
