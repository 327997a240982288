package signup

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/logger"
	"github.com/greenflowhq/greenflow/internal/payment"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/theme"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// PaymentModal runs the checkout flow: a confirmation screen, a pending
// spinner while the provider settles, then the receipt on success or a
// retry affordance on failure. Dismissing the modal mid-flight cancels the
// attempt; a settled payment cannot be dismissed back into the wizard.
type PaymentModal struct {
	provider payment.Provider
	cat      *catalog.Catalog
	spinner  spinner.Model

	status  payment.Status
	receipt payment.Receipt
	payErr  error

	// attempt invalidates in-flight completions after a dismissal: only the
	// PaymentDoneMsg carrying the current token is honored.
	attempt int
	cancel  context.CancelFunc

	width  int
	height int
}

// NewPaymentModal creates the payment modal.
func NewPaymentModal(provider payment.Provider, cat *catalog.Catalog) *PaymentModal {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Primary))

	return &PaymentModal{
		provider: provider,
		cat:      cat,
		spinner:  s,
	}
}

// Status returns the modal's current payment status.
func (m *PaymentModal) Status() payment.Status { return m.status }

// Receipt returns the settled receipt; valid only when Status is Success.
func (m *PaymentModal) Receipt() payment.Receipt { return m.receipt }

// Init initializes the payment modal.
func (m *PaymentModal) Init() tea.Cmd {
	return nil
}

// Start begins a payment attempt for the given invoice.
func (m *PaymentModal) Start(inv payment.Invoice) tea.Cmd {
	m.attempt++
	m.status = payment.StatusPending
	m.payErr = nil

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	attempt := m.attempt
	provider := m.provider
	logger.Info("payment: submitting attempt %d for %s %d", attempt, inv.Currency, inv.Amount)

	submit := func() tea.Msg {
		receipt, err := provider.Submit(ctx, inv)
		return PaymentDoneMsg{Attempt: attempt, Receipt: receipt, Err: err}
	}
	return tea.Batch(m.spinner.Tick, submit)
}

// Dismiss cancels any in-flight attempt and resets the modal to idle. The
// current attempt token is burned so a late completion is ignored.
func (m *PaymentModal) Dismiss() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.attempt++
	m.status = payment.StatusIdle
	m.payErr = nil
}

// HandleDone folds a payment completion into the modal. Stale completions
// (from a dismissed attempt) are dropped.
func (m *PaymentModal) HandleDone(msg PaymentDoneMsg) {
	if msg.Attempt != m.attempt {
		logger.Debug("payment: dropping stale completion for attempt %d", msg.Attempt)
		return
	}
	m.cancel = nil

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			logger.Debug("payment: attempt %d cancelled", msg.Attempt)
			m.status = payment.StatusIdle
			return
		}
		logger.Warn("payment: attempt %d failed: %v", msg.Attempt, msg.Err)
		m.status = payment.StatusFailed
		m.payErr = msg.Err
		return
	}

	logger.Info("payment: attempt %d settled, reference %s", msg.Attempt, msg.Receipt.Reference)
	m.status = payment.StatusSuccess
	m.receipt = msg.Receipt
}

// Update handles spinner ticks while pending.
func (m *PaymentModal) Update(msg tea.Msg) tea.Cmd {
	if m.status == payment.StatusPending {
		if tick, ok := msg.(spinner.TickMsg); ok {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(tick)
			return cmd
		}
	}
	return nil
}

// View renders the modal for the current payment status.
func (m *PaymentModal) View(cfg session.Configuration, totals session.Totals) string {
	t := theme.Current()
	symbol := m.cat.CurrencySymbol(cfg.Currency)

	var title, body, hint string
	borderColor := t.BorderFocused

	switch m.status {
	case payment.StatusIdle:
		title = "Complete Payment"
		body = lipgloss.JoinVertical(lipgloss.Left,
			rowStyle().Render(fmt.Sprintf("Monthly subscription   %s %d", symbol, totals.Subtotal)),
			rowStyle().Render(fmt.Sprintf("Prepaid balance        %s %d", symbol, totals.Balance)),
			"",
			checkedStyle().Render(fmt.Sprintf("Due today              %s %d", symbol, totals.Total)),
		)
		hint = wizard.RenderHintBar("enter", "pay now", "esc", "back")

	case payment.StatusPending:
		title = "Processing Payment"
		body = m.spinner.View() + " " + rowStyle().Render(
			fmt.Sprintf("Charging %s %d...", symbol, totals.Total))
		hint = wizard.RenderHintBar("esc", "cancel")

	case payment.StatusSuccess:
		title = "Payment Successful"
		body = lipgloss.JoinVertical(lipgloss.Left,
			checkedStyle().Render("✓ Welcome to GreenFlow!"),
			"",
			renderReceipt(m.receipt),
		)
		hint = wizard.RenderHintBar("q", "quit")
		borderColor = t.Success

	case payment.StatusFailed:
		title = "Payment Failed"
		errText := "payment could not be completed"
		if m.payErr != nil {
			errText = m.payErr.Error()
		}
		body = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Render("✗ " + errText)
		hint = wizard.RenderHintBar("enter", "retry", "esc", "back")
		borderColor = t.Error
	}

	titleLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary)).
		MarginBottom(1).
		Render(title)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleLine,
		body,
		"",
		mutedStyle().Render(hint),
	)

	return lipgloss.NewStyle().
		Width(52).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Render(content)
}

// SetSize updates the modal size.
func (m *PaymentModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}
