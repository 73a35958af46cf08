// Package editor owns the state of one drawing session: the grid, the
// character palette, the selected paint character and the color pair.
//
// An Editor is not safe for concurrent use. The UI event loop is its only
// mutator; exports work on a Snapshot, which later edits cannot change.
package editor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
	"unicode"
	"unicode/utf8"

	"asciicanvas/internal/export"
	"asciicanvas/internal/grid"
	"asciicanvas/internal/settings"
	"asciicanvas/internal/style"

	"github.com/mattn/go-runewidth"
)

// DefaultPalette seeds every new editor. The last entry is a space, which
// paints cells blank.
var DefaultPalette = []rune{'@', '#', '*', '+', '.', ' '}

var ErrDimensionMismatch = errors.New("grid dimensions do not match the editor")

// Editor is the controller for a drawing session.
type Editor struct {
	grid    *grid.Grid
	palette []rune
	paint   rune
	colors  style.Pair
}

// Snapshot is an immutable view of the editor taken at one instant.
type Snapshot struct {
	Grid   *grid.Grid
	Colors style.Pair
}

// New initializes an editor from a settings handoff. A nil handoff, or any
// missing or invalid field in it, falls back to the defaults.
func New(s *settings.Settings) (*Editor, error) {
	r := s.Resolve()
	g, err := grid.New(r.Rows, r.Cols)
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}
	return &Editor{
		grid:    g,
		palette: slices.Clone(DefaultPalette),
		paint:   DefaultPalette[0],
		colors:  r.Colors,
	}, nil
}

// Grid returns the current grid. The returned value never changes.
func (e *Editor) Grid() *grid.Grid { return e.grid }

// Rows returns the grid height.
func (e *Editor) Rows() int { return e.grid.Rows() }

// Cols returns the grid width.
func (e *Editor) Cols() int { return e.grid.Cols() }

// Palette returns a copy of the palette in display order.
func (e *Editor) Palette() []rune { return slices.Clone(e.palette) }

// PaintChar returns the selected paint character.
func (e *Editor) PaintChar() rune { return e.paint }

// PaintIndex returns the palette index of the paint character.
func (e *Editor) PaintIndex() int { return slices.Index(e.palette, e.paint) }

// Colors returns the text/background pair.
func (e *Editor) Colors() style.Pair { return e.colors }

// BorderColor returns the opposite of the background color.
func (e *Editor) BorderColor() style.Color { return e.colors.Border() }

// SelectChar makes ch the paint character. Characters outside the palette
// are ignored and reported as false.
func (e *Editor) SelectChar(ch rune) bool {
	if !slices.Contains(e.palette, ch) {
		return false
	}
	e.paint = ch
	return true
}

// SelectIndex selects the palette entry at i.
func (e *Editor) SelectIndex(i int) bool {
	if i < 0 || i >= len(e.palette) {
		return false
	}
	e.paint = e.palette[i]
	return true
}

// CycleChar moves the selection by delta palette entries, wrapping around.
func (e *Editor) CycleChar(delta int) {
	n := len(e.palette)
	i := (e.PaintIndex() + delta%n + n) % n
	e.paint = e.palette[i]
}

// CanAdd reports whether AddCharacter(s) would grow the palette: s must be
// exactly one printable character that is not already present.
func (e *Editor) CanAdd(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	ch, _ := utf8.DecodeRuneInString(s)
	if ch == utf8.RuneError || unicode.IsControl(ch) || runewidth.RuneWidth(ch) == 0 && ch != ' ' {
		return false
	}
	return !slices.Contains(e.palette, ch)
}

// AddCharacter appends s to the palette if CanAdd(s); otherwise it does nothing.
func (e *Editor) AddCharacter(s string) bool {
	if !e.CanAdd(s) {
		return false
	}
	ch, _ := utf8.DecodeRuneInString(s)
	e.palette = append(e.palette, ch)
	return true
}

// PaintCell writes the paint character at (r, c). Coordinates outside the
// grid are ignored and reported as false.
func (e *Editor) PaintCell(r, c int) bool {
	if !e.grid.InBounds(r, c) {
		return false
	}
	e.grid = e.grid.Set(r, c, e.paint)
	return true
}

// Clear replaces the grid with a blank one of the same size. Palette, paint
// character and colors are kept.
func (e *Editor) Clear() {
	e.grid = e.grid.Clear()
}

// Load replaces the grid with g, which must have the editor's dimensions.
func (e *Editor) Load(g *grid.Grid) error {
	if g.Rows() != e.grid.Rows() || g.Cols() != e.grid.Cols() {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensionMismatch,
			g.Rows(), g.Cols(), e.grid.Rows(), e.grid.Cols())
	}
	e.grid = g
	return nil
}

// SetTextColor sets the character color.
func (e *Editor) SetTextColor(c style.Color) { e.colors.Text = c }

// SetBackgroundColor sets the background color.
func (e *Editor) SetBackgroundColor(c style.Color) { e.colors.Background = c }

// SetTextColorHex parses s and sets the character color; on error nothing changes.
func (e *Editor) SetTextColorHex(s string) error {
	c, err := style.ParseHex(s)
	if err != nil {
		return err
	}
	e.SetTextColor(c)
	return nil
}

// SetBackgroundColorHex parses s and sets the background color; on error nothing changes.
func (e *Editor) SetBackgroundColorHex(s string) error {
	c, err := style.ParseHex(s)
	if err != nil {
		return err
	}
	e.SetBackgroundColor(c)
	return nil
}

// Settings returns the handoff record that would recreate this editor's
// dimensions and colors.
func (e *Editor) Settings() settings.Settings {
	return settings.FromResolved(settings.Resolved{
		Rows:   e.grid.Rows(),
		Cols:   e.grid.Cols(),
		Colors: e.colors,
	})
}

// Snapshot captures the grid and colors as they are now.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{Grid: e.grid, Colors: e.colors}
}

// Export writes the text and image artifacts of snap with w. Both come from
// the same snapshot; a failure of one does not prevent the other.
func (snap Snapshot) Export(ctx context.Context, w *export.Writer, now time.Time) export.Result {
	return w.WriteAll(ctx, snap.Grid, snap.Colors, now)
}

// ExportAll snapshots the editor and exports it.
func (e *Editor) ExportAll(ctx context.Context, w *export.Writer, now time.Time) export.Result {
	return e.Snapshot().Export(ctx, w, now)
}
