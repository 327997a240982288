package signup

import (
	"github.com/greenflowhq/greenflow/internal/payment"
	"github.com/greenflowhq/greenflow/internal/session"
)

// SetFieldMsg is sent when a profile field value changes.
type SetFieldMsg struct {
	Field session.ProfileField
	Value string
}

// ToggleTermsMsg is sent when the terms checkbox is flipped.
type ToggleTermsMsg struct{}

// AdjustQuantityMsg is sent when a platform quantity is changed by a delta.
type AdjustQuantityMsg struct {
	CatalogID string
	Delta     int
}

// ToggleSelectionMsg is sent when a feature, support tier, or integration
// is toggled.
type ToggleSelectionMsg struct {
	Field session.SelectionField
	ID    string
}

// AdjustChannelsMsg is sent when the WhatsApp channel count is changed by
// a delta.
type AdjustChannelsMsg struct {
	Delta int
}

// AdjustBalanceMsg is sent when the balance slider moves by a number of
// steps.
type AdjustBalanceMsg struct {
	Steps int
}

// AdvanceMsg asks the wizard to move one step forward. On the last step it
// opens the payment modal instead.
type AdvanceMsg struct{}

// RetreatMsg asks the wizard to move one step backward.
type RetreatMsg struct{}

// ShowTermsMsg asks the wizard to open the terms viewer overlay.
type ShowTermsMsg struct{}

// CloseTermsMsg asks the wizard to close the terms viewer overlay.
type CloseTermsMsg struct{}

// PaymentDoneMsg carries the outcome of a payment attempt. Attempt matches
// the token issued when the attempt started; stale completions are ignored.
type PaymentDoneMsg struct {
	Attempt int
	Receipt payment.Receipt
	Err     error
}
