// Package signup implements the six-step onboarding wizard: account
// details, platforms, AI features, managed support, channels and balance,
// and integrations, with a live order summary and a simulated checkout.
package signup

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/xid"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/config"
	"github.com/greenflowhq/greenflow/internal/logger"
	gfnats "github.com/greenflowhq/greenflow/internal/nats"
	"github.com/greenflowhq/greenflow/internal/payment"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/theme"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// step is the contract every wizard step satisfies. Steps render against
// the live snapshot and emit typed messages instead of mutating it.
type step interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(cfg session.Configuration) string
	SetSize(width, height int)
	Focus()
	FocusLast()
	Blur()
}

// stepTitles indexes display titles by 1-based sequencer position.
var stepTitles = []string{
	"",
	"Your Details",
	"Messaging Platforms",
	"AI Features",
	"Managed Support",
	"Channels & Balance",
	"Integrations",
}

// Model is the root Bubble Tea model for the signup wizard. It owns the
// Configuration snapshot, the pricing totals, the sequencer, and the
// journal; steps are collaborators that translate keys into messages.
type Model struct {
	cat     *catalog.Catalog
	cfg     session.Configuration
	totals  session.Totals
	seq     *wizard.Sequencer
	journal *session.Journal

	steps   []step
	panel   *PricingPanel
	modal   *PaymentModal
	terms   *TermsViewer
	modalUp bool
	termsUp bool

	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	width     int
	height    int
	cancelled bool
}

// New creates the wizard model. journal may be nil, in which case actions
// are not recorded.
func New(cat *catalog.Catalog, provider payment.Provider, journal *session.Journal) *Model {
	cfg := session.Default()

	m := &Model{
		cat:     cat,
		cfg:     cfg,
		totals:  session.Compute(cfg, cat),
		seq:     wizard.NewSequencer(session.StepCount),
		journal: journal,
		panel:   NewPricingPanel(cat),
		modal:   NewPaymentModal(provider, cat),
		terms:   NewTermsViewer(),
	}
	m.steps = []step{
		NewProfileStep(cat, cfg),
		NewPlatformsStep(cat),
		NewFeaturesStep(cat),
		NewSupportStep(cat),
		NewBalanceStep(cat),
		NewIntegrationsStep(cat),
	}
	return m
}

// Run wires up the embedded journal backend, runs the wizard program, and
// tears everything down afterwards.
func Run(appCfg *config.Config) error {
	cat := catalog.Default()
	provider := payment.Simulated{Delay: appCfg.PaymentDelay()}

	var journal *session.Journal
	ns, err := gfnats.StartEmbedded()
	if err != nil {
		// The wizard works without a journal; degrade instead of refusing
		// to start.
		logger.Warn("running without session journal: %v", err)
	} else {
		nc, err := gfnats.ConnectInProcess(ns)
		if err != nil {
			logger.Warn("running without session journal: %v", err)
		} else {
			defer func() {
				if err := gfnats.Shutdown(nc, ns); err != nil {
					logger.Warn("journal shutdown: %v", err)
				}
			}()

			js, err := jetstream.New(nc)
			if err != nil {
				logger.Warn("running without session journal: %v", err)
			} else {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				stream, err := gfnats.SetupStream(ctx, js)
				cancel()
				if err != nil {
					logger.Warn("running without session journal: %v", err)
				} else {
					journal = session.NewJournal(js, stream, "signup-"+xid.New().String())
				}
			}
		}
	}

	m := New(cat, provider, journal)
	m.cfg = m.cfg.WithField(session.FieldCurrency, appCfg.Currency)
	m.totals = session.Compute(m.cfg, cat)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	if fm, ok := finalModel.(*Model); ok && fm.cancelled {
		logger.Info("signup cancelled by user")
	}
	return nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.steps))
	for _, s := range m.steps {
		if cmd := s.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// currentStep returns the step component for the sequencer position.
func (m *Model) currentStep() step {
	return m.steps[m.seq.Pos()-1]
}

// record appends one journal event off the main loop. Journal failures are
// logged and never surface to the user.
func (m *Model) record(fn func(ctx context.Context, j *session.Journal) error) tea.Cmd {
	if m.journal == nil {
		return nil
	}
	j := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := fn(ctx, j); err != nil {
			logger.Warn("journal append failed: %v", err)
		}
		return nil
	}
}

// recompute refreshes the pricing totals after a snapshot change.
func (m *Model) recompute() {
	m.totals = session.Compute(m.cfg, m.cat)
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case cycleRequestMsg:
		if set, ok := resolveCycle(m.cat, m.cfg, msg); ok {
			return m.Update(set)
		}
		return m, nil

	case SetFieldMsg:
		m.cfg = m.cfg.WithField(msg.Field, msg.Value)
		m.recompute()
		field, value := msg.Field, msg.Value
		return m, m.record(func(ctx context.Context, j *session.Journal) error {
			return j.RecordField(ctx, field, value)
		})

	case ToggleTermsMsg:
		m.cfg = m.cfg.WithTerms(!m.cfg.TermsAccepted)
		accepted := m.cfg.TermsAccepted
		return m, m.record(func(ctx context.Context, j *session.Journal) error {
			return j.RecordTerms(ctx, accepted)
		})

	case AdjustQuantityMsg:
		m.cfg = m.cfg.WithQuantity(msg.CatalogID, msg.Delta)
		m.recompute()
		id, delta := msg.CatalogID, msg.Delta
		return m, m.record(func(ctx context.Context, j *session.Journal) error {
			return j.RecordQuantity(ctx, id, delta)
		})

	case ToggleSelectionMsg:
		m.cfg = m.cfg.Toggle(msg.Field, msg.ID)
		m.recompute()
		field, id := msg.Field, msg.ID
		return m, m.record(func(ctx context.Context, j *session.Journal) error {
			return j.RecordToggle(ctx, field, id)
		})

	case AdjustChannelsMsg:
		m.cfg = m.cfg.WithChannels(m.cfg.WhatsAppChannels + msg.Delta)
		m.recompute()
		count := m.cfg.WhatsAppChannels
		return m, m.record(func(ctx context.Context, j *session.Journal) error {
			return j.RecordChannels(ctx, count)
		})

	case AdjustBalanceMsg:
		raw := m.cfg.Balance + msg.Steps*session.BalanceStep
		m.cfg = m.cfg.WithBalance(raw)
		m.recompute()
		return m, m.record(func(ctx context.Context, j *session.Journal) error {
			return j.RecordBalance(ctx, raw)
		})

	case AdvanceMsg:
		return m.advance()

	case RetreatMsg:
		return m.retreat()

	case ShowTermsMsg:
		m.termsUp = true
		return m, nil

	case CloseTermsMsg:
		m.termsUp = false
		return m, nil

	case PaymentDoneMsg:
		wasSettled := m.modal.Status() == payment.StatusSuccess
		m.modal.HandleDone(msg)
		if !wasSettled && m.modal.Status() == payment.StatusSuccess {
			total := m.totals.Total
			return m, m.record(func(ctx context.Context, j *session.Journal) error {
				return j.RecordCheckout(ctx, session.ActionSucceeded, total)
			})
		}
		return m, nil

	case wizard.TabExitForwardMsg:
		m.focusButtons(true)
		return m, nil

	case wizard.TabExitBackwardMsg:
		m.focusButtons(false)
		return m, nil
	}

	// Forward everything else to collaborators that animate.
	if m.modalUp {
		return m, m.modal.Update(msg)
	}
	if m.termsUp {
		return m, m.terms.Update(msg)
	}
	return m, m.currentStep().Update(msg)
}

// handleKey routes key presses by overlay priority: payment modal, terms
// viewer, button bar, then the active step.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cancelled = true
		return m, tea.Quit
	}

	if m.modalUp {
		return m.handleModalKey(msg)
	}

	if m.termsUp {
		return m, m.terms.Update(msg)
	}

	switch msg.String() {
	case "ctrl+t":
		m.termsUp = true
		return m, nil

	case "esc":
		if m.buttonFocused {
			m.focusStep(true)
			return m, nil
		}
		if m.seq.IsFirst() {
			m.cancelled = true
			return m, tea.Quit
		}
		return m.retreat()
	}

	if m.buttonFocused {
		switch msg.String() {
		case "tab", "right":
			if !m.buttonBar.FocusNext() {
				m.focusStep(true)
			}
			return m, nil
		case "shift+tab", "left":
			if !m.buttonBar.FocusPrev() {
				m.focusStep(false)
			}
			return m, nil
		case "enter", " ":
			switch m.buttonBar.FocusedButton() {
			case wizard.ButtonBack:
				return m.retreat()
			case wizard.ButtonNext:
				return m.advance()
			}
			return m, nil
		}
		return m, nil
	}

	return m, m.currentStep().Update(msg)
}

// handleModalKey drives the payment modal's lifecycle.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.modal.Status() {
	case payment.StatusIdle:
		switch msg.String() {
		case "enter":
			return m, m.startPayment()
		case "esc":
			m.modal.Dismiss()
			m.modalUp = false
			return m, nil
		}

	case payment.StatusPending:
		if msg.String() == "esc" {
			m.modal.Dismiss()
			m.modalUp = false
			return m, nil
		}

	case payment.StatusSuccess:
		switch msg.String() {
		case "q", "enter", "esc":
			return m, tea.Quit
		}

	case payment.StatusFailed:
		switch msg.String() {
		case "enter":
			return m, m.startPayment()
		case "esc":
			m.modal.Dismiss()
			m.modalUp = false
			return m, nil
		}
	}
	return m, nil
}

// startPayment records the checkout submission and kicks off the provider.
func (m *Model) startPayment() tea.Cmd {
	inv := payment.Invoice{
		Currency: m.cfg.Currency,
		Amount:   m.totals.Total,
	}
	total := m.totals.Total
	recordCmd := m.record(func(ctx context.Context, j *session.Journal) error {
		return j.RecordCheckout(ctx, session.ActionSubmitted, total)
	})
	return tea.Batch(recordCmd, m.modal.Start(inv))
}

// advance moves forward; completing the final step opens the checkout
// modal. There are no validation gates between steps.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	m.focusStep(true)
	if m.seq.Advance() {
		m.modalUp = true
		return m, nil
	}
	m.layout()
	return m, nil
}

// retreat moves backward; a no-op on the first step.
func (m *Model) retreat() (tea.Model, tea.Cmd) {
	m.focusStep(true)
	m.seq.Retreat()
	m.layout()
	return m, nil
}

// focusButtons moves focus from step content to the button bar.
func (m *Model) focusButtons(fromStart bool) {
	m.currentStep().Blur()
	m.buttonFocused = true
	m.ensureButtonBar()
	if fromStart {
		m.buttonBar.FocusFirst()
	} else {
		m.buttonBar.FocusLast()
	}
}

// focusStep returns focus from the button bar to step content.
func (m *Model) focusStep(first bool) {
	m.buttonFocused = false
	if m.buttonBar != nil {
		m.buttonBar.Blur()
	}
	if first {
		m.currentStep().Focus()
	} else {
		m.currentStep().FocusLast()
	}
}

// ensureButtonBar builds the button bar for the current step.
func (m *Model) ensureButtonBar() {
	nextLabel := "Next →"
	if m.seq.IsLast() {
		nextLabel = "Checkout"
	}
	m.buttonBar = wizard.NewButtonBar(
		wizard.CreateBackNextButtons(!m.seq.IsFirst(), nextLabel),
	)
	m.buttonBar.SetWidth(m.stepPaneWidth())
}

func (m *Model) stepPaneWidth() int {
	w := m.width - 40
	if w < 50 {
		w = 50
	}
	if w > 76 {
		w = 76
	}
	return w
}

// layout pushes current dimensions into the collaborators.
func (m *Model) layout() {
	paneWidth := m.stepPaneWidth()
	contentHeight := m.height - 10
	if contentHeight < 12 {
		contentHeight = 12
	}
	for _, s := range m.steps {
		s.SetSize(paneWidth-6, contentHeight)
	}
	m.panel.SetWidth(36)
	m.modal.SetSize(m.width, m.height)
	m.terms.SetSize(m.width, m.height)
	if m.buttonBar != nil {
		m.buttonBar.SetWidth(paneWidth)
	}
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	var content string
	switch {
	case m.modalUp:
		content = m.modal.View(m.cfg, m.totals)
	case m.termsUp:
		content = m.terms.View()
	default:
		content = m.renderWizard()
	}

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderWizard renders the two-column layout: step pane plus order summary.
func (m *Model) renderWizard() string {
	t := theme.Current()

	title := stepTitleStyle().Render(
		fmt.Sprintf("Step %d of %d: %s", m.seq.Pos(), m.seq.Count(), stepTitles[m.seq.Pos()]))
	progress := m.renderProgress()

	stepContent := m.currentStep().View(m.cfg)

	m.ensureButtonBarForView()
	buttons := m.buttonBar.Render()

	hint := mutedStyle().Render(
		wizard.RenderHintBar("tab", "buttons", "esc", "back", "ctrl+c", "quit"))

	pane := lipgloss.NewStyle().
		Width(m.stepPaneWidth()).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			progress,
			"",
			stepContent,
			"",
			buttons,
			"",
			hint,
		))

	summary := m.panel.View(m.cfg, m.totals)

	return lipgloss.JoinHorizontal(lipgloss.Top, pane, " ", summary)
}

// renderProgress draws one marker per step, filled up to the current
// position.
func (m *Model) renderProgress() string {
	s := theme.Current().S()
	parts := make([]string, m.seq.Count())
	for i := 1; i <= m.seq.Count(); i++ {
		switch {
		case i == m.seq.Pos():
			parts[i-1] = s.StepLabelActive.Render("●")
		case i < m.seq.Pos():
			parts[i-1] = s.Price.Render("●")
		default:
			parts[i-1] = s.StepLabel.Render("○")
		}
	}
	return strings.Join(parts, " ")
}

// ensureButtonBarForView keeps a bar available for rendering without
// stealing focus state from an already-focused bar.
func (m *Model) ensureButtonBarForView() {
	if m.buttonBar == nil || !m.buttonFocused {
		m.ensureButtonBar()
	}
}
