package ui

import (
	"strings"

	"asciicanvas/internal/grid"
	"asciicanvas/internal/style"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PreviewWindow shows the text export of a snapshot with scrollback, exactly
// as it will be written to the .txt artifact. Esc dismisses.
type PreviewWindow struct {
	text     string
	colors   style.Pair
	viewport viewport.Model
}

var _ View = (*PreviewWindow)(nil)

const (
	defaultPreviewWidth  = 70
	defaultPreviewHeight = 18
)

// NewPreviewWindow previews g. width and height are the terminal size, or 0
// when unknown.
func NewPreviewWindow(g *grid.Grid, colors style.Pair, width, height int) *PreviewWindow {
	vp := viewport.New(defaultPreviewWidth, defaultPreviewHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	p := &PreviewWindow{text: g.Text(), colors: colors, viewport: vp}
	if width > 0 && height > 0 {
		p.resize(width, height)
	}
	p.viewport.SetContent(p.content())
	return p
}

// Text returns the previewed text.
func (p *PreviewWindow) Text() string {
	return p.text
}

// Init implements View.
func (p *PreviewWindow) Init() tea.Cmd {
	return nil
}

func (p *PreviewWindow) resize(width, height int) {
	p.viewport.Width = max(40, width-4)
	p.viewport.Height = max(12, height-6)
}

// content colors every line so trailing blanks stay visible.
func (p *PreviewWindow) content() string {
	st := canvasStyle(p.colors)
	lines := strings.Split(p.text, "\n")
	for i, l := range lines {
		lines[i] = st.Render(l)
	}
	return strings.Join(lines, "\n")
}

// Update implements View.
func (p *PreviewWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return p, msgCmd(DismissModalMsg{})
		}
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		p.viewport.SetContent(p.content())
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements View.
func (p *PreviewWindow) View() string {
	header := Styles.Title.Render("Text preview") + Styles.Hint.Render("  ↑↓: scroll  Esc: close")
	return header + "\n" + p.viewport.View()
}
