package session

import (
	"encoding/json"
	"time"

	"github.com/greenflowhq/greenflow/internal/logger"
	"github.com/greenflowhq/greenflow/internal/nats"
)

// Event is one recorded wizard action in the append-only session journal.
// The journal is a faithful trace of the session: replaying a session's
// events through Reduce yields the live Configuration snapshot.
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Session   string          `json:"session"`
	Type      string          `json:"type"`   // profile, platform, feature, support, channel, balance, integration, checkout
	Action    string          `json:"action"` // set, toggle, adjust, terms, submitted, succeeded
	Meta      json.RawMessage `json:"meta"`   // Action-specific metadata
	Data      string          `json:"data"`   // Primary content (field value, catalog id, ...)
}

// Event actions.
const (
	ActionSet       = "set"
	ActionToggle    = "toggle"
	ActionAdjust    = "adjust"
	ActionTerms     = "terms"
	ActionSubmitted = "submitted"
	ActionSucceeded = "succeeded"
)

type fieldMeta struct {
	Field string `json:"field"`
}

type boolMeta struct {
	Accepted bool `json:"accepted"`
}

type deltaMeta struct {
	Delta int `json:"delta"`
}

type countMeta struct {
	Count int `json:"count"`
}

type valueMeta struct {
	Value int `json:"value"`
}

// applyEvent folds one event into a configuration using the same pure
// operations the live session applies, so a replayed journal can never drift
// from the snapshot. Unparseable events are skipped.
func applyEvent(cfg Configuration, ev Event) Configuration {
	switch ev.Type {
	case nats.EventTypeProfile:
		switch ev.Action {
		case ActionSet:
			var meta fieldMeta
			if err := json.Unmarshal(ev.Meta, &meta); err != nil {
				logger.Warn("journal: bad profile meta: %v", err)
				return cfg
			}
			field, ok := profileFieldFromName(meta.Field)
			if !ok {
				logger.Warn("journal: unknown profile field %q", meta.Field)
				return cfg
			}
			return cfg.WithField(field, ev.Data)
		case ActionTerms:
			var meta boolMeta
			if err := json.Unmarshal(ev.Meta, &meta); err != nil {
				logger.Warn("journal: bad terms meta: %v", err)
				return cfg
			}
			return cfg.WithTerms(meta.Accepted)
		}

	case nats.EventTypePlatform:
		if ev.Action == ActionAdjust {
			var meta deltaMeta
			if err := json.Unmarshal(ev.Meta, &meta); err != nil {
				logger.Warn("journal: bad platform meta: %v", err)
				return cfg
			}
			return cfg.WithQuantity(ev.Data, meta.Delta)
		}

	case nats.EventTypeFeature, nats.EventTypeSupport, nats.EventTypeIntegration:
		if ev.Action == ActionToggle {
			field, ok := selectionFieldFromName(ev.Type)
			if !ok {
				return cfg
			}
			return cfg.Toggle(field, ev.Data)
		}

	case nats.EventTypeChannel:
		if ev.Action == ActionSet {
			var meta countMeta
			if err := json.Unmarshal(ev.Meta, &meta); err != nil {
				logger.Warn("journal: bad channel meta: %v", err)
				return cfg
			}
			return cfg.WithChannels(meta.Count)
		}

	case nats.EventTypeBalance:
		if ev.Action == ActionSet {
			var meta valueMeta
			if err := json.Unmarshal(ev.Meta, &meta); err != nil {
				logger.Warn("journal: bad balance meta: %v", err)
				return cfg
			}
			return cfg.WithBalance(meta.Value)
		}

	case nats.EventTypeCheckout:
		// Checkout events mark the session outcome; they carry no
		// configuration change.
	}
	return cfg
}
