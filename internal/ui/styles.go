package ui

import (
	"asciicanvas/internal/style"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors for the chrome around the canvas. The canvas itself uses the
// user's true colors.
const (
	ColorAccent    = "86"  // titles, focused inputs
	ColorHighlight = "205" // selected palette entry, modal borders
	ColorDanger    = "196" // errors, destructive confirmations
	ColorMuted     = "241" // hints
	ColorText      = "252" // normal text
	ColorDim       = "243" // disabled actions
	ColorWarning   = "208" // warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	Box       lipgloss.Style // modal box, highlight border
	BoxDanger lipgloss.Style // destructive confirmation

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Label    lipgloss.Style
	Details  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Strikethrough(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// canvasStyle paints cells in the session's text and background colors.
func canvasStyle(p style.Pair) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Text.Hex())).
		Background(lipgloss.Color(p.Background.Hex()))
}

// cursorStyle inverts the canvas colors so the cursor shows on any cell.
func cursorStyle(p style.Pair) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Background.Hex())).
		Background(lipgloss.Color(p.Text.Hex()))
}

// frameStyle draws the canvas border in the opposite of the background.
func frameStyle(p style.Pair) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(p.Border().Hex()))
}

// swatch renders a two-column block of c.
func swatch(c style.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}
