package signup

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// integrationRow is one cursor position: an item plus the category it
// renders under.
type integrationRow struct {
	category int
	item     catalog.IntegrationItem
}

// IntegrationsStep toggles third-party integrations, grouped by category in
// a scrollable viewport. Integrations carry no price; they only mark intent.
type IntegrationsStep struct {
	cat      *catalog.Catalog
	rows     []integrationRow
	cursor   int
	viewport viewport.Model
	width    int
	height   int
}

// NewIntegrationsStep creates the integrations step.
func NewIntegrationsStep(cat *catalog.Catalog) *IntegrationsStep {
	rows := make([]integrationRow, 0, 32)
	for ci, category := range cat.Integrations {
		for _, item := range category.Items {
			rows = append(rows, integrationRow{category: ci, item: item})
		}
	}

	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(14),
	)

	return &IntegrationsStep{
		cat:      cat,
		rows:     rows,
		viewport: vp,
	}
}

// Init initializes the integrations step.
func (s *IntegrationsStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the integrations step.
func (s *IntegrationsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return nil
		case "down", "j":
			if s.cursor < len(s.rows)-1 {
				s.cursor++
			}
			return nil
		case " ":
			if len(s.rows) == 0 {
				return nil
			}
			id := s.rows[s.cursor].item.ID
			return func() tea.Msg {
				return ToggleSelectionMsg{Field: session.SelectIntegrations, ID: id}
			}
		case "enter":
			return func() tea.Msg { return AdvanceMsg{} }
		case "tab":
			return func() tea.Msg { return wizard.TabExitForwardMsg{} }
		case "shift+tab":
			return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// View renders the grouped integration list against the live snapshot.
func (s *IntegrationsStep) View(cfg session.Configuration) string {
	var b strings.Builder
	cursorLine := 0
	line := 0
	lastCategory := -1

	for i, row := range s.rows {
		if row.category != lastCategory {
			if lastCategory != -1 {
				b.WriteString("\n")
				line++
			}
			category := s.cat.Integrations[row.category]
			b.WriteString(labelStyle().Bold(true).Render(
				fmt.Sprintf("%s %s", category.Icon.Glyph(), category.Title)))
			b.WriteString("\n")
			line++
			lastCategory = row.category
		}

		selected := cfg.Has(session.SelectIntegrations, row.item.ID)
		check := "[ ]"
		if selected {
			check = "[x]"
		}
		text := fmt.Sprintf("  %s %s", check, row.item.Name)

		switch {
		case i == s.cursor:
			cursorLine = line
			b.WriteString(cursorRowStyle().Render(text))
		case selected:
			b.WriteString(checkedStyle().Render(text))
		default:
			b.WriteString(rowStyle().Render(text))
		}
		b.WriteString("\n")
		line++
	}

	s.viewport.SetContent(b.String())
	s.scrollTo(cursorLine)

	count := len(cfg.Integrations)
	summary := mutedStyle().Render(fmt.Sprintf("%d selected • included at no extra cost", count))

	hint := mutedStyle().
		MarginTop(1).
		Render(wizard.RenderHintBar("↑↓", "move", "space", "toggle", "enter", "checkout"))

	return lipgloss.JoinVertical(lipgloss.Left, s.viewport.View(), summary, hint)
}

// scrollTo keeps the cursor line inside the viewport window.
func (s *IntegrationsStep) scrollTo(line int) {
	top := s.viewport.YOffset()
	height := s.viewport.Height()
	if line < top {
		s.viewport.SetYOffset(line)
	} else if line >= top+height {
		s.viewport.SetYOffset(line - height + 1)
	}
}

// SetSize updates the size of the integrations step.
func (s *IntegrationsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.SetWidth(width)
	vpHeight := height - 4
	if vpHeight < 6 {
		vpHeight = 6
	}
	s.viewport.SetHeight(vpHeight)
}

// Focus moves the cursor to the first row.
func (s *IntegrationsStep) Focus() { s.cursor = 0 }

// FocusLast moves the cursor to the last row.
func (s *IntegrationsStep) FocusLast() {
	if len(s.rows) > 0 {
		s.cursor = len(s.rows) - 1
	}
}

// Blur is a no-op; the cursor has no blinking state.
func (s *IntegrationsStep) Blur() {}
