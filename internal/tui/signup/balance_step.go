package signup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/theme"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// Rows on the balance step.
const (
	balanceFocusChannels = iota
	balanceFocusBalance
	balanceFocusCount
)

// BalanceStep sets the extra WhatsApp channel count and the prepaid
// messaging balance. The balance control is a slider over fixed steps; the
// snapshot clamps whatever it emits.
type BalanceStep struct {
	cat    *catalog.Catalog
	focus  int
	width  int
	height int
}

// NewBalanceStep creates the channels and balance step.
func NewBalanceStep(cat *catalog.Catalog) *BalanceStep {
	return &BalanceStep{cat: cat}
}

// Init initializes the balance step.
func (s *BalanceStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the balance step.
func (s *BalanceStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.focus > 0 {
				s.focus--
			}
		case "down", "j":
			if s.focus < balanceFocusCount-1 {
				s.focus++
			}
		case "right", "+", "l":
			return s.adjust(1)
		case "left", "-", "h":
			return s.adjust(-1)
		case "enter":
			return func() tea.Msg { return AdvanceMsg{} }
		case "tab":
			return func() tea.Msg { return wizard.TabExitForwardMsg{} }
		case "shift+tab":
			return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
		}
	}
	return nil
}

func (s *BalanceStep) adjust(delta int) tea.Cmd {
	switch s.focus {
	case balanceFocusChannels:
		return func() tea.Msg { return AdjustChannelsMsg{Delta: delta} }
	case balanceFocusBalance:
		return func() tea.Msg { return AdjustBalanceMsg{Steps: delta} }
	}
	return nil
}

// View renders the channels counter and balance slider.
func (s *BalanceStep) View(cfg session.Configuration) string {
	t := theme.Current()
	symbol := s.cat.CurrencySymbol(cfg.Currency)

	// Channels counter
	channelLine := fmt.Sprintf("◀ %d ▶   %s %d/channel per month",
		cfg.WhatsAppChannels, symbol, catalog.WhatsAppChannelUnitPrice)
	if s.focus == balanceFocusChannels {
		channelLine = cursorRowStyle().Render(channelLine)
	} else {
		channelLine = rowStyle().Render(channelLine)
	}
	channels := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle().Render("Additional WhatsApp channels"),
		channelLine,
	)

	// Balance slider
	slider := s.renderSlider(cfg.Balance)
	balanceLine := fmt.Sprintf("%s  %s %d", slider, symbol, cfg.Balance)
	if s.focus == balanceFocusBalance {
		balanceLine = cursorRowStyle().Render(balanceLine)
	} else {
		balanceLine = rowStyle().Render(balanceLine)
	}
	balance := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle().Render("Prepaid messaging balance"),
		balanceLine,
		mutedStyle().Render(fmt.Sprintf("%s %d – %s %d in steps of %d",
			symbol, session.BalanceMin, symbol, session.BalanceMax, session.BalanceStep)),
	)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		MarginTop(1).
		Render(wizard.RenderHintBar("↑↓", "move", "←→", "adjust", "enter", "next"))

	return lipgloss.JoinVertical(lipgloss.Left, channels, "", balance, hint)
}

// renderSlider draws a fixed-width track with a filled portion proportional
// to the balance position in its range.
func (s *BalanceStep) renderSlider(balance int) string {
	const track = 30
	span := session.BalanceMax - session.BalanceMin
	filled := (balance - session.BalanceMin) * track / span
	if filled < 0 {
		filled = 0
	}
	if filled > track {
		filled = track
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", track-filled) + "]"
}

// SetSize updates the size of the balance step.
func (s *BalanceStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus moves the cursor to the first control.
func (s *BalanceStep) Focus() { s.focus = 0 }

// FocusLast moves the cursor to the last control.
func (s *BalanceStep) FocusLast() { s.focus = balanceFocusCount - 1 }

// Blur is a no-op; the cursor has no blinking state.
func (s *BalanceStep) Blur() {}
