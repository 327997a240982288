package session

import (
	"testing"

	"github.com/greenflowhq/greenflow/internal/catalog"
)

func TestComputeEmptyConfiguration(t *testing.T) {
	cat := catalog.Default()
	totals := Compute(Default(), cat)

	if totals.Subtotal != 0 {
		t.Errorf("expected zero subtotal, got %d", totals.Subtotal)
	}
	if totals.Balance != BalanceMin {
		t.Errorf("expected balance %d, got %d", BalanceMin, totals.Balance)
	}
	if totals.Total != BalanceMin {
		t.Errorf("an empty configuration should cost exactly its balance, got %d", totals.Total)
	}
}

func TestComputeItemized(t *testing.T) {
	cat := catalog.Default()

	// 2× WhatsApp (150 each), AI Bot Building (300), one extra channel (99),
	// minimum balance (1000).
	cfg := Default().
		WithQuantity("whatsapp", 2).
		Toggle(SelectFeatures, "bot_building").
		WithChannels(1)

	totals := Compute(cfg, cat)

	if totals.Platform != 300 {
		t.Errorf("expected platform total 300, got %d", totals.Platform)
	}
	if totals.Feature != 300 {
		t.Errorf("expected feature total 300, got %d", totals.Feature)
	}
	if totals.Support != 0 {
		t.Errorf("expected support total 0, got %d", totals.Support)
	}
	if totals.Channel != 99 {
		t.Errorf("expected channel total 99, got %d", totals.Channel)
	}
	if totals.Subtotal != 699 {
		t.Errorf("expected subtotal 699, got %d", totals.Subtotal)
	}
	if totals.Total != 1699 {
		t.Errorf("expected total 1699, got %d", totals.Total)
	}
}

func TestComputeAllSections(t *testing.T) {
	cat := catalog.Default()

	cfg := Default().
		WithQuantity("tiktok", 1).
		Toggle(SelectSupport, "sup_mon").
		WithChannels(2).
		WithBalance(5000)

	totals := Compute(cfg, cat)

	want := 200 + 600 + 2*99
	if totals.Subtotal != want {
		t.Errorf("expected subtotal %d, got %d", want, totals.Subtotal)
	}
	if totals.Total != want+5000 {
		t.Errorf("expected total %d, got %d", want+5000, totals.Total)
	}
}

func TestComputeUnknownIDsCountZero(t *testing.T) {
	cat := catalog.Default()

	cfg := Default().
		WithQuantity("carrier_pigeon", 4).
		Toggle(SelectFeatures, "time_travel").
		Toggle(SelectSupport, "psychic_hotline")

	totals := Compute(cfg, cat)

	if totals.Subtotal != 0 {
		t.Errorf("unknown ids must contribute zero, got subtotal %d", totals.Subtotal)
	}
	if totals.Total != BalanceMin {
		t.Errorf("expected total %d, got %d", BalanceMin, totals.Total)
	}
}

func TestComputeOrderIndependent(t *testing.T) {
	cat := catalog.Default()

	a := Default().
		WithQuantity("whatsapp", 1).
		WithQuantity("instagram", 1).
		Toggle(SelectFeatures, "automation").
		Toggle(SelectFeatures, "payments")

	b := Default().
		Toggle(SelectFeatures, "payments").
		WithQuantity("instagram", 1).
		Toggle(SelectFeatures, "automation").
		WithQuantity("whatsapp", 1)

	if Compute(a, cat) != Compute(b, cat) {
		t.Error("totals must not depend on selection order")
	}
}

func TestComputeIsPure(t *testing.T) {
	cat := catalog.Default()
	cfg := Default().WithQuantity("whatsapp", 1)

	first := Compute(cfg, cat)
	second := Compute(cfg, cat)

	if first != second {
		t.Error("repeated computation over the same snapshot must be identical")
	}
}
