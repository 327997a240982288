package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/greenflowhq/greenflow/internal/nats"
)

// newTestJournal spins up the embedded server and returns a journal bound
// to a fresh session, with cleanup registered on t.
func newTestJournal(t *testing.T, session string) *Journal {
	t.Helper()

	ns, err := nats.StartEmbedded()
	if err != nil {
		t.Fatalf("failed to start NATS: %v", err)
	}
	t.Cleanup(ns.Shutdown)

	nc, err := nats.ConnectInProcess(ns)
	if err != nil {
		t.Fatalf("failed to connect to NATS: %v", err)
	}
	t.Cleanup(nc.Close)

	js, err := jetstream.New(nc)
	if err != nil {
		t.Fatalf("failed to create JetStream: %v", err)
	}

	stream, err := nats.SetupStream(context.Background(), js)
	if err != nil {
		t.Fatalf("failed to setup stream: %v", err)
	}

	return NewJournal(js, stream, session)
}

func TestJournalReduceMatchesLiveSnapshot(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t, "test-session")

	// Drive a full session through the recording API while applying the
	// same operations live.
	live := Default()

	if err := j.RecordField(ctx, FieldFirstName, "Jane"); err != nil {
		t.Fatalf("RecordField failed: %v", err)
	}
	live = live.WithField(FieldFirstName, "Jane")

	if err := j.RecordQuantity(ctx, "whatsapp", 2); err != nil {
		t.Fatalf("RecordQuantity failed: %v", err)
	}
	live = live.WithQuantity("whatsapp", 2)

	if err := j.RecordQuantity(ctx, "whatsapp", -1); err != nil {
		t.Fatalf("RecordQuantity failed: %v", err)
	}
	live = live.WithQuantity("whatsapp", -1)

	if err := j.RecordToggle(ctx, SelectFeatures, "bot_building"); err != nil {
		t.Fatalf("RecordToggle failed: %v", err)
	}
	live = live.Toggle(SelectFeatures, "bot_building")

	if err := j.RecordChannels(ctx, 3); err != nil {
		t.Fatalf("RecordChannels failed: %v", err)
	}
	live = live.WithChannels(3)

	// Raw pre-clamp value is recorded; replay clamps the same way.
	if err := j.RecordBalance(ctx, 7600); err != nil {
		t.Fatalf("RecordBalance failed: %v", err)
	}
	live = live.WithBalance(7600)

	if err := j.RecordCheckout(ctx, ActionSubmitted, 9000); err != nil {
		t.Fatalf("RecordCheckout failed: %v", err)
	}

	replayed, err := j.Reduce(ctx)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}

	liveJSON, _ := json.Marshal(live)
	replayedJSON, _ := json.Marshal(replayed)
	if string(liveJSON) != string(replayedJSON) {
		t.Errorf("replay drifted from live snapshot:\nlive:     %s\nreplayed: %s", liveJSON, replayedJSON)
	}
}

func TestJournalReduceEmptySession(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t, "empty-session")

	replayed, err := j.Reduce(ctx)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}

	defJSON, _ := json.Marshal(Default())
	gotJSON, _ := json.Marshal(replayed)
	if string(defJSON) != string(gotJSON) {
		t.Errorf("an empty journal must reduce to the default snapshot, got %s", gotJSON)
	}
}

func TestJournalSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestJournal(t, "session-a")
	b := NewJournal(a.js, a.stream, "session-b")

	if err := a.RecordToggle(ctx, SelectFeatures, "automation"); err != nil {
		t.Fatalf("RecordToggle failed: %v", err)
	}

	replayed, err := b.Reduce(ctx)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if replayed.Has(SelectFeatures, "automation") {
		t.Error("events from one session must not leak into another")
	}
}
