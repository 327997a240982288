package signup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/payment"
)

func newTestModal() *PaymentModal {
	return NewPaymentModal(payment.Simulated{Delay: time.Millisecond}, catalog.Default())
}

func TestPaymentModalSuccessFlow(t *testing.T) {
	m := newTestModal()
	require.Equal(t, payment.StatusIdle, m.Status())

	cmd := m.Start(payment.Invoice{Currency: "AED", Amount: 1699})
	require.NotNil(t, cmd)
	require.Equal(t, payment.StatusPending, m.Status())

	m.HandleDone(PaymentDoneMsg{
		Attempt: 1,
		Receipt: payment.Receipt{Reference: "ref-1", Amount: 1699, PaidAt: time.Now()},
	})

	require.Equal(t, payment.StatusSuccess, m.Status())
	require.Equal(t, "ref-1", m.Receipt().Reference)
}

func TestPaymentModalStaleCompletionIgnored(t *testing.T) {
	m := newTestModal()

	m.Start(payment.Invoice{Amount: 100})
	m.Dismiss()
	require.Equal(t, payment.StatusIdle, m.Status())

	// The completion from the dismissed attempt arrives late; it must not
	// resurrect the payment.
	m.HandleDone(PaymentDoneMsg{
		Attempt: 1,
		Receipt: payment.Receipt{Reference: "stale", Amount: 100},
	})

	require.Equal(t, payment.StatusIdle, m.Status())
	require.Empty(t, m.Receipt().Reference)
}

func TestPaymentModalRetryAfterFailure(t *testing.T) {
	m := newTestModal()

	m.Start(payment.Invoice{Amount: 100})
	m.HandleDone(PaymentDoneMsg{Attempt: 1, Err: errors.New("card declined")})
	require.Equal(t, payment.StatusFailed, m.Status())

	// Retry issues a fresh attempt token.
	m.Start(payment.Invoice{Amount: 100})
	require.Equal(t, payment.StatusPending, m.Status())

	m.HandleDone(PaymentDoneMsg{
		Attempt: 2,
		Receipt: payment.Receipt{Reference: "ref-2", Amount: 100},
	})
	require.Equal(t, payment.StatusSuccess, m.Status())
}

func TestPaymentModalCancellationReturnsToIdle(t *testing.T) {
	m := newTestModal()

	m.Start(payment.Invoice{Amount: 100})

	// A cancelled submit surfaces context.Canceled on the live attempt.
	m.HandleDone(PaymentDoneMsg{Attempt: 1, Err: context.Canceled})
	require.Equal(t, payment.StatusIdle, m.Status())
}
