package catalog

import "testing"

func TestDefaultLookups(t *testing.T) {
	cat := Default()

	t.Run("platform lookup", func(t *testing.T) {
		item, ok := cat.Platform("whatsapp")
		if !ok {
			t.Fatal("expected whatsapp platform to exist")
		}
		if item.UnitPrice != 150 {
			t.Errorf("expected whatsapp price 150, got %d", item.UnitPrice)
		}
	})

	t.Run("unknown ids fail closed", func(t *testing.T) {
		if _, ok := cat.Platform("telegram"); ok {
			t.Error("expected unknown platform to be absent")
		}
		if _, ok := cat.Feature("whatsapp"); ok {
			t.Error("expected platform id to be absent from features")
		}
		if _, ok := cat.SupportTier("nope"); ok {
			t.Error("expected unknown support tier to be absent")
		}
	})

	t.Run("support pricing", func(t *testing.T) {
		item, ok := cat.SupportTier("sup_mon")
		if !ok {
			t.Fatal("expected sup_mon to exist")
		}
		if item.UnitPrice != 600 {
			t.Errorf("expected 24/7 monitoring price 600, got %d", item.UnitPrice)
		}
	})
}

func TestCurrencySymbol(t *testing.T) {
	cat := Default()

	tests := []struct {
		code string
		want string
	}{
		{"AED", "AED"},
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"JPY", "JPY"}, // unknown codes fall back to the code
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := cat.CurrencySymbol(tt.code); got != tt.want {
				t.Errorf("CurrencySymbol(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestIntegrationSlugIDs(t *testing.T) {
	cat := Default()

	// Slugs are stable and derived from display names.
	item, ok := cat.Integration("google-sheets")
	if !ok {
		t.Fatal("expected google-sheets integration to exist")
	}
	if item.Name != "Google Sheets" {
		t.Errorf("expected name 'Google Sheets', got %q", item.Name)
	}

	if _, ok := cat.Integration("Google Sheets"); ok {
		t.Error("display names must not resolve as ids")
	}

	// All ids are unique across categories.
	seen := make(map[string]string)
	for _, category := range cat.Integrations {
		for _, it := range category.Items {
			if prev, dup := seen[it.ID]; dup {
				t.Errorf("duplicate integration id %q (%s and %s)", it.ID, prev, it.Name)
			}
			seen[it.ID] = it.Name
		}
	}
}

func TestIconGlyphFallback(t *testing.T) {
	if Icon(9999).Glyph() != "•" {
		t.Error("unknown icons should render the bullet fallback")
	}
	if IconBot.Glyph() == "" {
		t.Error("known icons should render a non-empty glyph")
	}
}
