package ui

import (
	"fmt"
	"strconv"
	"strings"

	"asciicanvas/internal/settings"
	"asciicanvas/internal/style"
	"asciicanvas/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Setup form field IDs, in tab order. They match the handoff JSON keys.
const (
	fieldHeight     = "height"
	fieldWidth      = "width"
	fieldText       = "textColor"
	fieldBackground = "backgroundColor"
)

var setupLabels = map[string]string{
	fieldHeight:     "Height (rows)",
	fieldWidth:      "Width (columns)",
	fieldText:       "Text color",
	fieldBackground: "Background color",
}

const setupLabelWidth = 18

// SetupView is the form that produces a settings handoff.
type SetupView struct {
	inputs map[string]*textinput.Model
	focus  *FocusManager
	errs   map[string]string
}

var _ View = (*SetupView)(nil)

// NewSetupView creates the form prefilled from initial.
func NewSetupView(initial settings.Resolved) *SetupView {
	v := &SetupView{
		inputs: make(map[string]*textinput.Model),
		focus:  NewFocusManager(fieldHeight, fieldWidth, fieldText, fieldBackground),
		errs:   make(map[string]string),
	}
	v.inputs[fieldHeight] = newSetupInput(strconv.Itoa(initial.Rows), 3)
	v.inputs[fieldWidth] = newSetupInput(strconv.Itoa(initial.Cols), 3)
	v.inputs[fieldText] = newSetupInput(initial.Colors.Text.Hex(), 7)
	v.inputs[fieldBackground] = newSetupInput(initial.Colors.Background.Hex(), 7)

	v.focus.OnChange = func(from, to string) {
		if in, ok := v.inputs[from]; ok {
			in.Blur()
		}
		if in, ok := v.inputs[to]; ok {
			in.Focus()
			in.CursorEnd()
		}
	}
	v.inputs[v.focus.Current].Focus()
	return v
}

func newSetupInput(value string, limit int) *textinput.Model {
	ti := textinput.New()
	ti.CharLimit = limit
	ti.Width = 9
	ti.Prompt = "> "
	ti.SetValue(value)
	ti.CursorEnd()
	return &ti
}

// Focused returns the ID of the field with focus.
func (v *SetupView) Focused() string {
	return v.focus.Current
}

// SetValue replaces the content of field id.
func (v *SetupView) SetValue(id, value string) {
	if in, ok := v.inputs[id]; ok {
		in.SetValue(value)
	}
}

// Errors returns the validation message per field from the last submit.
func (v *SetupView) Errors() map[string]string {
	return v.errs
}

// Settings parses the form. The returned map holds one message per invalid
// field and is empty when the settings are usable.
func (v *SetupView) Settings() (settings.Settings, map[string]string) {
	errs := make(map[string]string)
	var s settings.Settings

	parseDim := func(id string) int {
		raw := strings.TrimSpace(v.inputs[id].Value())
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs[id] = "enter a whole number"
		case !settings.InRange(n):
			errs[id] = fmt.Sprintf("must be %d-%d", settings.MinDimension, settings.MaxDimension)
		}
		return n
	}
	s.Height = parseDim(fieldHeight)
	s.Width = parseDim(fieldWidth)

	parseColor := func(id string) string {
		c, err := style.ParseHex(v.inputs[id].Value())
		if err != nil {
			errs[id] = "use #RRGGBB"
			return ""
		}
		return c.Hex()
	}
	s.TextColor = parseColor(fieldText)
	s.BackgroundColor = parseColor(fieldBackground)
	return s, errs
}

// Init implements View.
func (v *SetupView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *SetupView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			v.focus.Next()
			return v, nil
		case "shift+tab", "up":
			v.focus.Prev()
			return v, nil
		case "enter":
			s, errs := v.Settings()
			v.errs = errs
			if len(errs) > 0 {
				for _, id := range v.focus.Order {
					if _, bad := errs[id]; bad {
						v.focus.SetFocus(id)
						break
					}
				}
				return v, nil
			}
			return v, msgCmd(StartEditorMsg{Settings: s})
		}
	}

	in := v.inputs[v.focus.Current]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return v, cmd
}

// View implements View.
func (v *SetupView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("New canvas") + "\n")
	b.WriteString(Styles.Hint.Render(fmt.Sprintf("Dimensions %d-%d, colors as #RRGGBB",
		settings.MinDimension, settings.MaxDimension)) + "\n\n")

	for _, id := range v.focus.Order {
		label := textutil.PadRightVisual(setupLabels[id], setupLabelWidth)
		if id == v.focus.Current {
			label = Styles.Selected.Render(label)
		} else {
			label = Styles.Normal.Render(label)
		}
		line := label + v.inputs[id].View()
		if id == fieldText || id == fieldBackground {
			if c, err := style.ParseHex(v.inputs[id].Value()); err == nil {
				line += " " + swatch(c)
			}
		}
		if msg, bad := v.errs[id]; bad {
			line += "  " + Styles.Error.Render(msg)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + Styles.Hint.Render("Tab/↑↓: field  Enter: create  Ctrl+C: quit"))
	return b.String()
}
