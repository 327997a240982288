package signup

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// ToggleStep is a checkbox list over priced catalog items. The features and
// support steps are both instances of it, differing only in the item list
// and which collection they toggle.
type ToggleStep struct {
	field  session.SelectionField
	items  []catalog.Item
	cursor int
	width  int
	height int
}

// NewFeaturesStep creates the AI features step.
func NewFeaturesStep(cat *catalog.Catalog) *ToggleStep {
	return &ToggleStep{field: session.SelectFeatures, items: cat.Features}
}

// NewSupportStep creates the managed support step.
func NewSupportStep(cat *catalog.Catalog) *ToggleStep {
	return &ToggleStep{field: session.SelectSupport, items: cat.Support}
}

// Init initializes the toggle step.
func (s *ToggleStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the toggle step.
func (s *ToggleStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
		case " ":
			field := s.field
			id := s.items[s.cursor].ID
			return func() tea.Msg {
				return ToggleSelectionMsg{Field: field, ID: id}
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

// View renders the checkbox list against the live snapshot.
func (s *ToggleStep) View(cfg session.Configuration) string {
	var rows []string
	for i, item := range s.items {
		selected := cfg.Has(s.field, item.ID)

		check := "[ ]"
		if selected {
			check = "[x]"
		}

		line := fmt.Sprintf("%s %s %-22s %s/mo",
			check,
			item.Icon.Glyph(),
			item.Label,
			priceStyle().Render(fmt.Sprintf("%4d", item.UnitPrice)),
		)

		if i == s.cursor {
			line = cursorRowStyle().Render(line)
		} else if selected {
			line = checkedStyle().Render(line)
		} else {
			line = rowStyle().Render(line)
		}
		rows = append(rows, line)
	}

	hint := mutedStyle().
		MarginTop(1).
		Render(wizard.RenderHintBar("↑↓", "move", "space", "toggle", "enter", "next"))

	return lipgloss.JoinVertical(lipgloss.Left, append(rows, hint)...)
}

// SetSize updates the size of the toggle step.
func (s *ToggleStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus moves the cursor to the first row.
func (s *ToggleStep) Focus() { s.cursor = 0 }

// FocusLast moves the cursor to the last row.
func (s *ToggleStep) FocusLast() { s.cursor = len(s.items) - 1 }

// Blur is a no-op; the cursor has no blinking state.
func (s *ToggleStep) Blur() {}
