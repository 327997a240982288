package session

import (
	"encoding/json"
	"testing"

	"github.com/greenflowhq/greenflow/internal/nats"
)

func TestApplyEventMatchesLiveOperations(t *testing.T) {
	// The same actions applied live and folded from events must converge on
	// the same snapshot.
	live := Default().
		WithField(FieldFirstName, "Jane").
		WithTerms(false).
		WithQuantity("whatsapp", 2).
		Toggle(SelectFeatures, "bot_building").
		Toggle(SelectSupport, "sup_auto").
		Toggle(SelectIntegrations, "shopify").
		WithChannels(1).
		WithBalance(7400)

	events := []Event{
		{Type: nats.EventTypeProfile, Action: ActionSet, Meta: mustMeta(fieldMeta{Field: "first_name"}), Data: "Jane"},
		{Type: nats.EventTypeProfile, Action: ActionTerms, Meta: mustMeta(boolMeta{Accepted: false})},
		{Type: nats.EventTypePlatform, Action: ActionAdjust, Meta: mustMeta(deltaMeta{Delta: 2}), Data: "whatsapp"},
		{Type: nats.EventTypeFeature, Action: ActionToggle, Data: "bot_building"},
		{Type: nats.EventTypeSupport, Action: ActionToggle, Data: "sup_auto"},
		{Type: nats.EventTypeIntegration, Action: ActionToggle, Data: "shopify"},
		{Type: nats.EventTypeChannel, Action: ActionSet, Meta: mustMeta(countMeta{Count: 1})},
		{Type: nats.EventTypeBalance, Action: ActionSet, Meta: mustMeta(valueMeta{Value: 7400})},
	}

	replayed := Default()
	for _, ev := range events {
		replayed = applyEvent(replayed, ev)
	}

	liveJSON, _ := json.Marshal(live)
	replayedJSON, _ := json.Marshal(replayed)
	if string(liveJSON) != string(replayedJSON) {
		t.Errorf("replay drifted from live snapshot:\nlive:     %s\nreplayed: %s", liveJSON, replayedJSON)
	}
}

func TestApplyEventToggleRoundTrip(t *testing.T) {
	cfg := Default()
	ev := Event{Type: nats.EventTypeFeature, Action: ActionToggle, Data: "automation"}

	cfg = applyEvent(cfg, ev)
	if !cfg.Has(SelectFeatures, "automation") {
		t.Fatal("expected feature present after first toggle event")
	}

	cfg = applyEvent(cfg, ev)
	if cfg.Has(SelectFeatures, "automation") {
		t.Error("expected feature absent after second toggle event")
	}
}

func TestApplyEventBalanceClamps(t *testing.T) {
	cfg := applyEvent(Default(), Event{
		Type:   nats.EventTypeBalance,
		Action: ActionSet,
		Meta:   mustMeta(valueMeta{Value: 99999}),
	})
	if cfg.Balance != BalanceMax {
		t.Errorf("replayed balance must clamp like the live path, got %d", cfg.Balance)
	}
}

func TestApplyEventSkipsMalformed(t *testing.T) {
	base := Default().WithQuantity("whatsapp", 1)

	tests := []struct {
		name string
		ev   Event
	}{
		{"bad profile meta", Event{Type: nats.EventTypeProfile, Action: ActionSet, Meta: json.RawMessage(`{`), Data: "x"}},
		{"unknown profile field", Event{Type: nats.EventTypeProfile, Action: ActionSet, Meta: mustMeta(fieldMeta{Field: "shoe_size"}), Data: "42"}},
		{"bad platform meta", Event{Type: nats.EventTypePlatform, Action: ActionAdjust, Meta: json.RawMessage(`not json`), Data: "whatsapp"}},
		{"unknown type", Event{Type: "mystery", Action: ActionSet}},
		{"unknown action", Event{Type: nats.EventTypeFeature, Action: "explode", Data: "bot_building"}},
		{"checkout carries no change", Event{Type: nats.EventTypeCheckout, Action: ActionSubmitted, Meta: mustMeta(valueMeta{Value: 1699})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyEvent(base, tt.ev)
			gotJSON, _ := json.Marshal(got)
			baseJSON, _ := json.Marshal(base)
			if string(gotJSON) != string(baseJSON) {
				t.Errorf("event must leave the snapshot untouched:\nbefore: %s\nafter:  %s", baseJSON, gotJSON)
			}
		})
	}
}
