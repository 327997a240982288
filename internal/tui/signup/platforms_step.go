package signup

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// PlatformsStep selects messaging platforms with per-platform quantities.
// Plus and minus adjust the quantity under the cursor; a quantity falling to
// zero removes the selection entirely.
type PlatformsStep struct {
	cat    *catalog.Catalog
	cursor int
	width  int
	height int
}

// NewPlatformsStep creates the platforms step.
func NewPlatformsStep(cat *catalog.Catalog) *PlatformsStep {
	return &PlatformsStep{cat: cat}
}

// Init initializes the platforms step.
func (s *PlatformsStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the platforms step.
func (s *PlatformsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.cat.Platforms)-1 {
				s.cursor++
			}
		case "right", "+", "l", " ":
			id := s.cat.Platforms[s.cursor].ID
			return func() tea.Msg {
				return AdjustQuantityMsg{CatalogID: id, Delta: 1}
			}
		case "left", "-", "h":
			id := s.cat.Platforms[s.cursor].ID
			return func() tea.Msg {
				return AdjustQuantityMsg{CatalogID: id, Delta: -1}
			}
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

// View renders the platform list against the live snapshot.
func (s *PlatformsStep) View(cfg session.Configuration) string {
	var rows []string
	for i, item := range s.cat.Platforms {
		qty := cfg.Quantity(item.ID)

		qtyCell := "  -  "
		if qty > 0 {
			qtyCell = fmt.Sprintf("  %d  ", qty)
		}

		line := fmt.Sprintf("%s %-18s %s/mo  ×%s",
			item.Icon.Glyph(),
			item.Label,
			priceStyle().Render(fmt.Sprintf("%4d", item.UnitPrice)),
			qtyCell,
		)
		if qty > 0 {
			line += priceStyle().Render(fmt.Sprintf("= %d", qty*item.UnitPrice))
		}

		if i == s.cursor {
			line = cursorRowStyle().Render(line)
		} else if qty > 0 {
			line = checkedStyle().Render(line)
		} else {
			line = rowStyle().Render(line)
		}
		rows = append(rows, line)
	}

	hint := mutedStyle().
		MarginTop(1).
		Render(wizard.RenderHintBar("↑↓", "move", "+/-", "quantity", "enter", "next"))

	return lipgloss.JoinVertical(lipgloss.Left, append(rows, hint)...)
}

// SetSize updates the size of the platforms step.
func (s *PlatformsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus moves the cursor to the first row.
func (s *PlatformsStep) Focus() { s.cursor = 0 }

// FocusLast moves the cursor to the last row.
func (s *PlatformsStep) FocusLast() { s.cursor = len(s.cat.Platforms) - 1 }

// Blur is a no-op; the cursor has no blinking state.
func (s *PlatformsStep) Blur() {}
