package signup

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/session"
	"github.com/greenflowhq/greenflow/internal/tui/theme"
	"github.com/greenflowhq/greenflow/internal/tui/wizard"
)

// Focusable rows on the profile step, top to bottom.
const (
	focusFirstName = iota
	focusLastName
	focusEmail
	focusPhone
	focusCompany
	focusWebsite
	focusIndustry
	focusCurrency
	focusTerms
	profileFocusCount
)

// profileInputs maps focus rows to their profile field for the text inputs.
var profileInputs = []struct {
	focus       int
	field       session.ProfileField
	label       string
	placeholder string
}{
	{focusFirstName, session.FieldFirstName, "First name", "Jane"},
	{focusLastName, session.FieldLastName, "Last name", "Doe"},
	{focusEmail, session.FieldEmail, "Email", "jane@company.com"},
	{focusPhone, session.FieldPhone, "Phone", "+971 50 000 0000"},
	{focusCompany, session.FieldCompany, "Company", "Acme LLC"},
	{focusWebsite, session.FieldWebsite, "Website", "https://acme.com"},
}

// ProfileStep collects account details: six free-text fields, industry and
// currency selectors, and the terms checkbox. Values are stored verbatim as
// they change; nothing blocks leaving the step.
type ProfileStep struct {
	cat    *catalog.Catalog
	inputs []textinput.Model
	focus  int
	width  int
	height int
}

// NewProfileStep creates the profile step seeded from the current snapshot.
func NewProfileStep(cat *catalog.Catalog, cfg session.Configuration) *ProfileStep {
	inputs := make([]textinput.Model, len(profileInputs))
	for i, def := range profileInputs {
		ti := textinput.New()
		ti.Placeholder = def.placeholder
		ti.CharLimit = 120
		ti.SetValue(cfg.Field(def.field))
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &ProfileStep{
		cat:    cat,
		inputs: inputs,
	}
}

// Init initializes the profile step.
func (p *ProfileStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the profile step.
func (p *ProfileStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "shift+tab":
			if p.focus == 0 {
				if msg.String() == "shift+tab" {
					return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
				}
				return nil
			}
			p.setFocus(p.focus - 1)
			return nil

		case "down", "tab", "enter":
			if p.focus == profileFocusCount-1 {
				if msg.String() == "tab" {
					return func() tea.Msg { return wizard.TabExitForwardMsg{} }
				}
				if msg.String() == "enter" {
					return func() tea.Msg { return AdvanceMsg{} }
				}
				return nil
			}
			p.setFocus(p.focus + 1)
			return nil

		case "left", "right":
			switch p.focus {
			case focusIndustry, focusCurrency:
				delta := 1
				if msg.String() == "left" {
					delta = -1
				}
				return p.cycle(delta)
			}

		case " ":
			if p.focus == focusTerms {
				return func() tea.Msg { return ToggleTermsMsg{} }
			}
		}
	}

	// Forward everything else to the focused text input and report changes.
	if idx, ok := p.inputIndex(p.focus); ok {
		before := p.inputs[idx].Value()
		var cmd tea.Cmd
		p.inputs[idx], cmd = p.inputs[idx].Update(msg)
		after := p.inputs[idx].Value()
		if after != before {
			field := profileInputs[idx].field
			return tea.Batch(cmd, func() tea.Msg {
				return SetFieldMsg{Field: field, Value: after}
			})
		}
		return cmd
	}
	return nil
}

// cycle emits the next industry or currency value for the focused selector.
// The new value is derived in the wizard's snapshot; here we only need the
// catalog order, so the command closes over the step's focus at press time.
func (p *ProfileStep) cycle(delta int) tea.Cmd {
	focus := p.focus
	return func() tea.Msg {
		return cycleRequestMsg{focus: focus, delta: delta}
	}
}

// cycleRequestMsg is internal: the wizard resolves it against the live
// snapshot and re-emits a SetFieldMsg.
type cycleRequestMsg struct {
	focus int
	delta int
}

// resolveCycle maps a cycler request to the concrete next value.
func resolveCycle(cat *catalog.Catalog, cfg session.Configuration, req cycleRequestMsg) (SetFieldMsg, bool) {
	switch req.focus {
	case focusIndustry:
		ids := make([]string, len(cat.Industries))
		for i, ind := range cat.Industries {
			ids[i] = ind.ID
		}
		return SetFieldMsg{
			Field: session.FieldIndustry,
			Value: cycleValue(ids, cfg.Industry, req.delta),
		}, true
	case focusCurrency:
		codes := make([]string, len(cat.Currencies))
		for i, cur := range cat.Currencies {
			codes[i] = cur.Code
		}
		return SetFieldMsg{
			Field: session.FieldCurrency,
			Value: cycleValue(codes, cfg.Currency, req.delta),
		}, true
	}
	return SetFieldMsg{}, false
}

// cycleValue steps through options, wrapping at both ends. An unset or
// unknown current value lands on the first option.
func cycleValue(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		return options[0]
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func (p *ProfileStep) inputIndex(focus int) (int, bool) {
	for i, def := range profileInputs {
		if def.focus == focus {
			return i, true
		}
	}
	return 0, false
}

func (p *ProfileStep) setFocus(focus int) {
	if idx, ok := p.inputIndex(p.focus); ok {
		p.inputs[idx].Blur()
	}
	p.focus = focus
	if idx, ok := p.inputIndex(p.focus); ok {
		p.inputs[idx].Focus()
	}
}

// View renders the profile step against the live snapshot.
func (p *ProfileStep) View(cfg session.Configuration) string {
	t := theme.Current()
	var rows []string

	for i, def := range profileInputs {
		label := labelStyle().Width(12).Render(def.label)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, p.inputs[i].View()))
	}

	rows = append(rows, p.renderCycler("Industry", p.industryLabel(cfg), p.focus == focusIndustry))
	rows = append(rows, p.renderCycler("Currency", cfg.Currency, p.focus == focusCurrency))

	// Terms checkbox
	check := "[ ]"
	checkStyle := rowStyle()
	if cfg.TermsAccepted {
		check = "[x]"
		checkStyle = checkedStyle()
	}
	termsLine := fmt.Sprintf("%s I agree to the Terms of Service", check)
	if p.focus == focusTerms {
		termsLine = cursorRowStyle().Render(termsLine)
	} else {
		termsLine = checkStyle.Render(termsLine)
	}
	rows = append(rows, "", termsLine)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		MarginTop(1).
		Render(wizard.RenderHintBar("↑↓", "move", "←→", "select", "space", "toggle terms", "ctrl+t", "read terms"))

	return lipgloss.JoinVertical(lipgloss.Left, append(rows, hint)...)
}

func (p *ProfileStep) industryLabel(cfg session.Configuration) string {
	if label := p.cat.IndustryLabel(cfg.Industry); label != "" {
		return label
	}
	return "— select —"
}

func (p *ProfileStep) renderCycler(label, value string, focused bool) string {
	line := fmt.Sprintf("◀ %s ▶", value)
	if focused {
		line = cursorRowStyle().Render(line)
	} else {
		line = rowStyle().Render(line)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle().Width(12).Render(label), line)
}

// SetSize updates the size of the profile step.
func (p *ProfileStep) SetSize(width, height int) {
	p.width = width
	p.height = height
	for i := range p.inputs {
		p.inputs[i].SetWidth(min(40, width-14))
	}
}

// Focus focuses the first row.
func (p *ProfileStep) Focus() {
	p.setFocus(0)
}

// FocusLast focuses the last row.
func (p *ProfileStep) FocusLast() {
	p.setFocus(profileFocusCount - 1)
}

// Blur blurs all inputs.
func (p *ProfileStep) Blur() {
	if idx, ok := p.inputIndex(p.focus); ok {
		p.inputs[idx].Blur()
	}
}
