package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/greenflowhq/greenflow/internal/logger"
	"github.com/greenflowhq/greenflow/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/xid"
)

// Journal records every wizard action for one session as an append-only
// event stream on the embedded, memory-backed JetStream. The live snapshot
// stays authoritative; the journal is an audit trail that can be replayed
// into an identical Configuration.
type Journal struct {
	js      jetstream.JetStream
	stream  jetstream.Stream
	session string
}

// NewJournal creates a journal bound to one session name.
func NewJournal(js jetstream.JetStream, stream jetstream.Stream, session string) *Journal {
	return &Journal{js: js, stream: stream, session: session}
}

// Session returns the session name this journal records under.
func (j *Journal) Session() string { return j.session }

// Append publishes one event to the session's subject. Caller-side failures
// are expected to be logged and ignored: the journal must never block or
// fail a user action.
func (j *Journal) Append(ctx context.Context, ev Event) error {
	if ev.ID == "" {
		ev.ID = xid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	ev.Session = j.session

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	subject := nats.SubjectForEvent(j.session, ev.Type)
	logger.Debug("journal: publishing %s/%s", ev.Type, ev.Action)

	if _, err := j.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}
	return nil
}

func mustMeta(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		// All meta shapes are plain structs of ints/bools/strings.
		panic(err)
	}
	return data
}

// RecordField records a profile field write.
func (j *Journal) RecordField(ctx context.Context, field ProfileField, value string) error {
	return j.Append(ctx, Event{
		Type:   nats.EventTypeProfile,
		Action: ActionSet,
		Meta:   mustMeta(fieldMeta{Field: field.String()}),
		Data:   value,
	})
}

// RecordTerms records a terms checkbox flip.
func (j *Journal) RecordTerms(ctx context.Context, accepted bool) error {
	return j.Append(ctx, Event{
		Type:   nats.EventTypeProfile,
		Action: ActionTerms,
		Meta:   mustMeta(boolMeta{Accepted: accepted}),
	})
}

// RecordQuantity records a platform quantity delta.
func (j *Journal) RecordQuantity(ctx context.Context, catalogID string, delta int) error {
	return j.Append(ctx, Event{
		Type:   nats.EventTypePlatform,
		Action: ActionAdjust,
		Meta:   mustMeta(deltaMeta{Delta: delta}),
		Data:   catalogID,
	})
}

// RecordToggle records a set-membership flip on one of the toggle
// collections.
func (j *Journal) RecordToggle(ctx context.Context, field SelectionField, id string) error {
	return j.Append(ctx, Event{
		Type:   field.String(),
		Action: ActionToggle,
		Data:   id,
	})
}

// RecordChannels records a WhatsApp channel count write.
func (j *Journal) RecordChannels(ctx context.Context, count int) error {
	return j.Append(ctx, Event{
		Type:   nats.EventTypeChannel,
		Action: ActionSet,
		Meta:   mustMeta(countMeta{Count: count}),
	})
}

// RecordBalance records a prepaid balance write (the raw value, pre-clamp,
// so the journal shows what the control emitted).
func (j *Journal) RecordBalance(ctx context.Context, raw int) error {
	return j.Append(ctx, Event{
		Type:   nats.EventTypeBalance,
		Action: ActionSet,
		Meta:   mustMeta(valueMeta{Value: raw}),
	})
}

// RecordCheckout records a checkout lifecycle event (submitted/succeeded)
// with the payable total at that moment.
func (j *Journal) RecordCheckout(ctx context.Context, action string, total int) error {
	return j.Append(ctx, Event{
		Type:   nats.EventTypeCheckout,
		Action: action,
		Meta:   mustMeta(valueMeta{Value: total}),
	})
}

// Reduce replays all of the session's events in order into a Configuration,
// starting from Default(). Malformed events are skipped with a warning,
// mirroring the tolerant read path everywhere else.
func (j *Journal) Reduce(ctx context.Context) (Configuration, error) {
	consumer, err := j.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: nats.SubjectForSession(j.session),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return Configuration{}, fmt.Errorf("creating consumer: %w", err)
	}

	cfg := Default()

	const batchSize = 1000
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var ev Event
			if err := json.Unmarshal(msg.Data(), &ev); err != nil {
				logger.Warn("journal: skipping malformed event: %v", err)
				msg.Ack()
				continue
			}
			cfg = applyEvent(cfg, ev)
			msg.Ack()
		}

		if count < batchSize {
			break
		}
	}

	return cfg, nil
}
