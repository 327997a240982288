package signup

import (
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/tui/theme"
)

// stepTitleStyle renders the current step heading.
func stepTitleStyle() lipgloss.Style {
	return theme.Current().S().HeaderTitle.MarginBottom(1)
}

// cursorRowStyle highlights the row under the cursor.
func cursorRowStyle() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBright)).
		Background(lipgloss.Color(t.BgSurface0)).
		Bold(true)
}

// rowStyle renders an unselected row.
func rowStyle() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase))
}

// priceStyle renders per-row prices.
func priceStyle() lipgloss.Style {
	return theme.Current().S().Price
}

// mutedStyle renders secondary text.
func mutedStyle() lipgloss.Style {
	return theme.Current().S().Muted
}

// labelStyle renders field labels on the profile step.
func labelStyle() lipgloss.Style {
	return theme.Current().S().StepLabel
}

// checkedStyle renders selected checkboxes and active selections.
func checkedStyle() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Success)).
		Bold(true)
}
