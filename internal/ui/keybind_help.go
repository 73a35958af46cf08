package ui

import (
	"asciicanvas/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the transient help line shown after SPC, listing
// the keys that can follow the sequence typed so far in mode. The result is
// always a single line; width > 0 truncates it to fit.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode, width int) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = "SPC"
	}
	prefix = Styles.Title.Render(prefix) + " "

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	if width > 0 {
		h.Width = max(1, width-textutil.VisualWidthStyled(prefix))
	}
	return prefix + h.ShortHelpView(bindings)
}
