// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// CellWidth is the number of terminal columns one canvas cell occupies.
// Two columns keep cells roughly square in most terminal fonts.
const CellWidth = 2

// VisibleSpace stands in for a blank palette entry.
const VisibleSpace = "␠"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a string with ANSI styling.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, avail, "") + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating if wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w > targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// Cell renders one canvas character padded to CellWidth columns. Characters
// wider than a cell are replaced so the grid stays aligned.
func Cell(ch rune) string {
	w := runewidth.RuneWidth(ch)
	switch {
	case w <= 0:
		return strings.Repeat(" ", CellWidth)
	case w > CellWidth:
		return strings.Repeat("?", CellWidth)
	}
	return string(ch) + strings.Repeat(" ", CellWidth-w)
}

// PaletteLabel renders a palette character for display, making a space visible.
func PaletteLabel(ch rune) string {
	if ch == ' ' {
		return VisibleSpace
	}
	return string(ch)
}
