package signup

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/tui/theme"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// termsMarkdown is the Terms of Service shown in the overlay. The checkbox
// on the profile step refers to this document.
const termsMarkdown = `# GreenFlow Terms of Service

## 1. Subscription

Your subscription starts when the first payment settles. Platform,
feature, and support charges recur monthly at the prices shown at
checkout. Prices are in your selected display currency.

## 2. Prepaid Balance

The prepaid messaging balance is a one-time deposit consumed by
outbound messages. It is charged in full at checkout and does not
renew automatically.

## 3. WhatsApp Channels

Additional WhatsApp channels are billed per channel per month at a
flat rate. Channel counts can be changed at any time from the
account dashboard.

## 4. Cancellation

You can cancel at any time. Monthly charges stop at the end of the
current billing period. Unused prepaid balance is non-refundable.

## 5. Fair Use

Automated messaging must comply with each platform's messaging
policies. We may suspend accounts that send spam or violate
platform rules.
`

// TermsViewer renders the terms document as markdown in a scrollable
// overlay. Opened with ctrl+t from anywhere in the wizard.
type TermsViewer struct {
	viewport viewport.Model
	width    int
	height   int
}

// NewTermsViewer creates the terms overlay.
func NewTermsViewer() *TermsViewer {
	vp := viewport.New(
		viewport.WithWidth(64),
		viewport.WithHeight(18),
	)
	vp.SetContent(renderTermsMarkdown(60))
	return &TermsViewer{viewport: vp}
}

// renderTermsMarkdown renders the terms with glamour, falling back to the
// raw markdown if rendering fails.
func renderTermsMarkdown(width int) string {
	if width > 120 {
		width = 120
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return termsMarkdown
	}
	rendered, err := r.Render(termsMarkdown)
	if err != nil {
		return termsMarkdown
	}
	return strings.TrimSuffix(rendered, "\n")
}

// Update handles messages for the terms overlay.
func (v *TermsViewer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q", "ctrl+t":
			return func() tea.Msg { return CloseTermsMsg{} }
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the terms overlay.
func (v *TermsViewer) View() string {
	t := theme.Current()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary)).
		MarginBottom(1).
		Render("Terms of Service")

	hint := mutedStyle().
		MarginTop(1).
		Render(wizard.RenderHintBar("↑↓", "scroll", "esc", "close"))

	content := lipgloss.JoinVertical(lipgloss.Left, title, v.viewport.View(), hint)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderFocused)).
		Render(content)
}

// SetSize updates the overlay size.
func (v *TermsViewer) SetSize(width, height int) {
	v.width = width
	v.height = height
	vpWidth := min(64, width-8)
	vpHeight := height - 10
	if vpHeight < 8 {
		vpHeight = 8
	}
	if vpHeight > 24 {
		vpHeight = 24
	}
	v.viewport.SetWidth(vpWidth)
	v.viewport.SetHeight(vpHeight)
	v.viewport.SetContent(renderTermsMarkdown(vpWidth - 2))
}
