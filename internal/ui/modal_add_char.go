package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AddCharModal collects one new palette character. Submitting is disabled
// while the input would be rejected by the palette.
type AddCharModal struct {
	input  textinput.Model
	canAdd func(string) bool
}

var _ View = (*AddCharModal)(nil)

// NewAddCharModal creates the modal. canAdd reports whether a value is
// acceptable; nil accepts anything non-empty.
func NewAddCharModal(canAdd func(string) bool) *AddCharModal {
	ti := textinput.New()
	ti.Placeholder = "X"
	ti.CharLimit = 1
	ti.Width = 4
	ti.Focus()
	return &AddCharModal{input: ti, canAdd: canAdd}
}

// Value returns the current input.
func (m *AddCharModal) Value() string {
	return m.input.Value()
}

// Enabled reports whether Enter would add the current input.
func (m *AddCharModal) Enabled() bool {
	v := m.input.Value()
	if m.canAdd == nil {
		return v != ""
	}
	return m.canAdd(v)
}

// Init implements View.
func (m *AddCharModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddCharModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, msgCmd(DismissModalMsg{})
		case "enter":
			if !m.Enabled() {
				return m, nil
			}
			return m, msgCmd(AddCharMsg{Char: m.input.Value()})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *AddCharModal) View() string {
	content := Styles.Title.Render("Add character") + "\n\n"
	content += m.input.View() + "\n\n"
	add := Styles.Hint.Render("Enter: add")
	if !m.Enabled() {
		add = Styles.Disabled.Render("Enter: add")
	}
	content += add + Styles.Hint.Render("  Esc: cancel")
	return Styles.Box.Render(content)
}
