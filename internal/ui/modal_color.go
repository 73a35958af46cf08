package ui

import (
	"fmt"

	"asciicanvas/internal/style"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ColorModal edits one color of the pair as a hex value with a live swatch.
type ColorModal struct {
	Target ColorTarget
	input  textinput.Model
	err    error
}

var _ View = (*ColorModal)(nil)

// NewColorModal opens with current prefilled.
func NewColorModal(target ColorTarget, current style.Color) *ColorModal {
	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Width = 9
	ti.SetValue(current.Hex())
	ti.CursorEnd()
	ti.Focus()
	return &ColorModal{Target: target, input: ti}
}

// Init implements View.
func (m *ColorModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ColorModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, msgCmd(DismissModalMsg{})
		case "enter":
			c, err := style.ParseHex(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			return m, msgCmd(SetColorMsg{Target: m.Target, Hex: c.Hex()})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd
}

// View implements View.
func (m *ColorModal) View() string {
	content := Styles.Title.Render(fmt.Sprintf("%s color", m.Target)) + "\n\n"
	content += m.input.View()
	if c, err := style.ParseHex(m.input.Value()); err == nil {
		content += " " + swatch(c)
		if m.Target == TargetBackground {
			if border, err := style.OppositeHex(m.input.Value()); err == nil {
				content += Styles.Muted.Render("  border " + border)
			}
		}
	}
	if m.err != nil {
		content += "\n" + Styles.Error.Render(m.err.Error())
	}
	content += "\n\n" + Styles.Hint.Render("Enter: apply  Esc: cancel")
	return Styles.Box.Render(content)
}
