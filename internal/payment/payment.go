// Package payment defines the checkout provider boundary. The shipped
// provider is a simulation: a fixed latency window followed by unconditional
// success. The interface still carries errors end to end so a real gateway
// can slot in and surface a Failed outcome.
package payment

import (
	"context"
	"time"

	"github.com/rs/xid"
)

// Status is the checkout presenter's view of a payment attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusFailed
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Invoice is the payable amount handed to a provider. Amount is an integer
// in the display currency; the currency code is informational only.
type Invoice struct {
	Reference string `json:"reference"`
	Currency  string `json:"currency"`
	Amount    int    `json:"amount"`
}

// Receipt is the proof of a settled payment.
type Receipt struct {
	Reference string    `json:"reference"`
	Currency  string    `json:"currency"`
	Amount    int       `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}

// Provider settles invoices. Submit blocks until the payment settles, the
// provider fails, or ctx is cancelled; a cancelled submit must have no
// observable effect.
type Provider interface {
	Submit(ctx context.Context, inv Invoice) (Receipt, error)
}

// Simulated is a provider that waits a fixed delay and then succeeds. It
// never returns a provider failure; only ctx cancellation aborts it.
type Simulated struct {
	Delay time.Duration
}

// Submit waits out the configured delay, honoring cancellation, then
// returns a receipt for the full invoice amount.
func (s Simulated) Submit(ctx context.Context, inv Invoice) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	ref := inv.Reference
	if ref == "" {
		ref = xid.New().String()
	}

	return Receipt{
		Reference: ref,
		Currency:  inv.Currency,
		Amount:    inv.Amount,
		PaidAt:    time.Now(),
	}, nil
}
