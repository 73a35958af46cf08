// Package grid holds the fixed-size character table painted by the editor.
//
// A Grid is a value: Set and Clear return a new Grid and never modify the
// receiver. Set duplicates only the touched row, so untouched rows are shared
// between successive grids. Any *Grid handed out is therefore a stable
// snapshot that later edits cannot change.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Blank is the marker stored in unpainted cells.
const Blank = ' '

var (
	ErrInvalidSize = errors.New("invalid grid size")
	ErrRagged      = errors.New("rows have differing widths")
)

// Grid is a rows x cols table of runes.
type Grid struct {
	rows  int
	cols  int
	cells [][]rune
}

// New returns a grid with every cell set to Blank.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = blankRow(cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for c := range row {
		row[c] = Blank
	}
	return row
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) addresses a cell of g.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid) mustBeInBounds(r, c int) {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of range for %dx%d grid", r, c, g.rows, g.cols))
	}
}

// At returns the rune stored at (r, c). It panics if (r, c) is out of range.
func (g *Grid) At(r, c int) rune {
	g.mustBeInBounds(r, c)
	return g.cells[r][c]
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []rune {
	g.mustBeInBounds(r, 0)
	out := make([]rune, g.cols)
	copy(out, g.cells[r])
	return out
}

// Set returns a grid identical to g except that (r, c) holds ch.
// A zero rune is stored as Blank. It panics if (r, c) is out of range.
func (g *Grid) Set(r, c int, ch rune) *Grid {
	g.mustBeInBounds(r, c)
	if ch == 0 {
		ch = Blank
	}
	if g.cells[r][c] == ch {
		return g
	}

	cells := make([][]rune, g.rows)
	copy(cells, g.cells)
	row := make([]rune, g.cols)
	copy(row, g.cells[r])
	row[c] = ch
	cells[r] = row

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Clear returns a blank grid with the same dimensions as g.
func (g *Grid) Clear() *Grid {
	cleared, _ := New(g.rows, g.cols)
	return cleared
}

// Count returns how many cells hold ch.
func (g *Grid) Count(ch rune) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == ch {
				n++
			}
		}
	}
	return n
}

// Painted returns the number of non-blank cells.
func (g *Grid) Painted() int {
	return g.rows*g.cols - g.Count(Blank)
}

// Equal reports whether g and o have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Text joins each row into a line and the lines with a single "\n".
// There is no trailing newline; blank cells are literal spaces.
func (g *Grid) Text() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r, row := range g.cells {
		for _, ch := range row {
			sb.WriteRune(ch)
		}
		if r < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (g *Grid) String() string { return g.Text() }

// SerializeText returns the plain-text export of g.
func SerializeText(g *Grid) string { return g.Text() }

// ParseText rebuilds a grid from the output of Text.
// A single trailing newline and "\r\n" line endings are tolerated.
func ParseText(s string) (*Grid, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidSize)
	}

	lines := strings.Split(s, "\n")
	cells := make([][]rune, len(lines))
	cols := -1
	for r, line := range lines {
		row := []rune(line)
		if cols == -1 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, r+1, len(row), cols)
		}
		cells[r] = row
	}
	if cols == 0 {
		return nil, fmt.Errorf("%w: zero-width lines", ErrInvalidSize)
	}

	return &Grid{rows: len(lines), cols: cols, cells: cells}, nil
}
