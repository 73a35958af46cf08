package ui

import (
	"strings"
	"testing"

	"asciicanvas/internal/editor"
	"asciicanvas/internal/settings"
	"asciicanvas/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T, rows, cols int) *CanvasView {
	t.Helper()
	ed, err := editor.New(&settings.Settings{Height: rows, Width: cols})
	require.NoError(t, err)
	return NewCanvasView(ed)
}

// screenPos returns the terminal position of cell (r, c) with no scrolling.
func screenPos(r, c int) (x, y int) {
	return frameWidth + c*textutil.CellWidth, headerLines + frameWidth + r
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestCanvasView_ClickPaintsCell(t *testing.T) {
	v := newTestCanvas(t, 5, 5)

	x, y := screenPos(2, 3)
	v.Update(click(x, y))
	assert.Equal(t, '@', v.Editor.Grid().At(2, 3))

	// Right half of the two-column cell maps to the same cell.
	v.Editor.SelectChar('#')
	v.Update(click(x+1, y))
	assert.Equal(t, '#', v.Editor.Grid().At(2, 3))
	assert.Equal(t, 1, v.Editor.Grid().Painted())

	r, c := v.Cursor()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

func TestCanvasView_ClicksOutsideAreIgnored(t *testing.T) {
	v := newTestCanvas(t, 5, 5)
	before := v.Editor.Grid()

	// Title, top-left corner, right border, bottom border, far away.
	outside := [][2]int{
		{0, 0},
		{0, headerLines},
		{frameWidth + 5*textutil.CellWidth, headerLines + 1},
		{frameWidth, headerLines + frameWidth + 5},
		{200, 200},
	}
	for _, p := range outside {
		v.Update(click(p[0], p[1]))
	}
	assert.Same(t, before, v.Editor.Grid())
}

func TestCanvasView_DragPaints(t *testing.T) {
	v := newTestCanvas(t, 5, 5)
	for c := 0; c < 3; c++ {
		x, y := screenPos(1, c)
		v.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	}
	assert.Equal(t, 3, v.Editor.Grid().Count('@'))

	x, y := screenPos(4, 4)
	v.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Equal(t, ' ', v.Editor.Grid().At(4, 4), "release does not paint")
}

func TestCanvasView_KeyboardPaint(t *testing.T) {
	v := newTestCanvas(t, 5, 5)

	v.Update(keyMsg("right"))
	v.Update(keyMsg("j"))
	v.Update(keyMsg("enter"))
	assert.Equal(t, '@', v.Editor.Grid().At(1, 1))

	// Cursor stops at the edges.
	for i := 0; i < 10; i++ {
		v.Update(keyMsg("up"))
		v.Update(keyMsg("h"))
	}
	r, c := v.Cursor()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	v.Update(keyMsg("$"))
	_, c = v.Cursor()
	assert.Equal(t, 4, c)
}

func TestCanvasView_PaletteKeys(t *testing.T) {
	v := newTestCanvas(t, 5, 5)

	v.Update(keyMsg("3"))
	assert.Equal(t, '*', v.Editor.PaintChar())
	v.Update(keyMsg("tab"))
	assert.Equal(t, '+', v.Editor.PaintChar())
	v.Update(keyMsg("shift+tab"))
	v.Update(keyMsg("shift+tab"))
	assert.Equal(t, '#', v.Editor.PaintChar())
	v.Update(keyMsg("9"))
	assert.Equal(t, '#', v.Editor.PaintChar(), "no ninth palette entry yet")
}

func TestCanvasView_ScrollsToCursor(t *testing.T) {
	v := newTestCanvas(t, 50, 100)
	v.Update(tea.WindowSizeMsg{Width: 42, Height: 27})

	// 42 columns hold 20 cells; 27 lines hold 20 rows.
	assert.Equal(t, 20, v.visibleCols())
	assert.Equal(t, 20, v.visibleRows())

	for i := 0; i < 25; i++ {
		v.Update(keyMsg("right"))
		v.Update(keyMsg("down"))
	}
	row, col := v.Offset()
	assert.Equal(t, 6, row)
	assert.Equal(t, 6, col)

	// A click now lands on the scrolled cell.
	x, y := screenPos(0, 0)
	v.Update(click(x, y))
	assert.Equal(t, '@', v.Editor.Grid().At(6, 6))
}

func TestCanvasView_WheelScroll(t *testing.T) {
	v := newTestCanvas(t, 50, 10)
	v.Update(tea.WindowSizeMsg{Width: 80, Height: 17})
	require.Equal(t, 10, v.visibleRows())

	for i := 0; i < 100; i++ {
		v.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	row, _ := v.Offset()
	assert.Equal(t, 40, row)
	r, _ := v.Cursor()
	assert.GreaterOrEqual(t, r, 40, "cursor follows the scrolled window")
}

func TestCanvasView_View(t *testing.T) {
	v := newTestCanvas(t, 5, 6)
	v.Editor.PaintCell(0, 0)
	v.Editor.AddCharacter("X")

	out := v.View()
	assert.Contains(t, out, "ASCII Canvas")
	assert.Contains(t, out, "5×6")
	assert.Contains(t, out, "[1:@]")
	assert.Contains(t, out, "6:"+textutil.VisibleSpace)
	assert.Contains(t, out, "7:X")
	assert.Contains(t, out, "1 painted")
	assert.Contains(t, out, "#000000")

	lines := strings.Split(out, "\n")
	// title, palette, top border, 5 rows, bottom border, status
	require.Len(t, lines, 10)
	assert.Equal(t, 6*textutil.CellWidth+2*frameWidth, textutil.VisualWidthStyled(lines[3]))
}

func TestCanvasView_ExportSpinner(t *testing.T) {
	v := newTestCanvas(t, 5, 5)
	assert.NotNil(t, v.SetExporting(true))
	assert.True(t, v.Exporting())
	assert.Nil(t, v.SetExporting(false))
	assert.False(t, v.Exporting())
}
