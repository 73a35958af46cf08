package ui

import (
	"fmt"
	"strings"

	"asciicanvas/internal/editor"
	"asciicanvas/internal/grid"
	"asciicanvas/internal/style"
	"asciicanvas/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen layout of the canvas view, top to bottom: title, palette strip,
// framed grid, then footerLines of status and hints drawn by the app.
const (
	headerLines = 2
	frameWidth  = 1
	footerLines = 3
)

// CanvasView renders an editor's grid and maps keys and mouse events onto it.
type CanvasView struct {
	Editor *editor.Editor

	curR, curC     int
	rowOff, colOff int
	width, height  int // terminal size; 0 until the first WindowSizeMsg

	spinner   spinner.Model
	exporting bool
}

var _ View = (*CanvasView)(nil)

// NewCanvasView wraps e.
func NewCanvasView(e *editor.Editor) *CanvasView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status
	return &CanvasView{Editor: e, spinner: s}
}

// Init implements View.
func (v *CanvasView) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal size and keeps the cursor on screen.
func (v *CanvasView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.scrollToCursor()
}

// SetExporting toggles the export spinner.
func (v *CanvasView) SetExporting(exporting bool) tea.Cmd {
	v.exporting = exporting
	if exporting {
		return v.spinner.Tick
	}
	return nil
}

// Exporting reports whether an export is in flight.
func (v *CanvasView) Exporting() bool {
	return v.exporting
}

// Cursor returns the keyboard cursor position.
func (v *CanvasView) Cursor() (r, c int) {
	return v.curR, v.curC
}

// Offset returns the first visible row and column.
func (v *CanvasView) Offset() (row, col int) {
	return v.rowOff, v.colOff
}

// Reset moves the cursor and scroll position back to the origin.
func (v *CanvasView) Reset() {
	v.curR, v.curC, v.rowOff, v.colOff = 0, 0, 0, 0
}

func (v *CanvasView) visibleRows() int {
	rows := v.Editor.Rows()
	if v.height <= 0 {
		return rows
	}
	return max(1, min(rows, v.height-headerLines-2*frameWidth-footerLines))
}

func (v *CanvasView) visibleCols() int {
	cols := v.Editor.Cols()
	if v.width <= 0 {
		return cols
	}
	return max(1, min(cols, (v.width-2*frameWidth)/textutil.CellWidth))
}

// CellAt maps a terminal position to the grid cell drawn there.
func (v *CanvasView) CellAt(x, y int) (r, c int, ok bool) {
	gy := y - headerLines - frameWidth
	gx := x - frameWidth
	if gx < 0 || gy < 0 {
		return 0, 0, false
	}
	vr, vc := gy, gx/textutil.CellWidth
	if vr >= v.visibleRows() || vc >= v.visibleCols() {
		return 0, 0, false
	}
	r, c = v.rowOff+vr, v.colOff+vc
	if !v.Editor.Grid().InBounds(r, c) {
		return 0, 0, false
	}
	return r, c, true
}

// MoveCursor moves the cursor by (dr, dc), stopping at the grid edges.
func (v *CanvasView) MoveCursor(dr, dc int) {
	v.curR = clamp(v.curR+dr, 0, v.Editor.Rows()-1)
	v.curC = clamp(v.curC+dc, 0, v.Editor.Cols()-1)
	v.scrollToCursor()
}

func (v *CanvasView) scrollToCursor() {
	v.rowOff = scrollFor(v.curR, v.rowOff, v.visibleRows(), v.Editor.Rows())
	v.colOff = scrollFor(v.curC, v.colOff, v.visibleCols(), v.Editor.Cols())
}

// scrollFor returns the offset that keeps pos inside a window of size visible.
func scrollFor(pos, off, visible, total int) int {
	if pos < off {
		off = pos
	}
	if pos >= off+visible {
		off = pos - visible + 1
	}
	return clamp(off, 0, max(0, total-visible))
}

func (v *CanvasView) scroll(dr int) {
	v.rowOff = clamp(v.rowOff+dr, 0, max(0, v.Editor.Rows()-v.visibleRows()))
	v.curR = clamp(v.curR, v.rowOff, v.rowOff+v.visibleRows()-1)
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

// Update implements View.
func (v *CanvasView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		if !v.exporting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.scroll(-1)
		case tea.MouseButtonWheelDown:
			v.scroll(1)
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
				return v, nil
			}
			if r, c, ok := v.CellAt(msg.X, msg.Y); ok {
				v.curR, v.curC = r, c
				v.Editor.PaintCell(r, c)
			}
		}
		return v, nil

	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "up", "k":
			v.MoveCursor(-1, 0)
		case "down", "j":
			v.MoveCursor(1, 0)
		case "left", "h":
			v.MoveCursor(0, -1)
		case "right", "l":
			v.MoveCursor(0, 1)
		case "home", "0":
			v.MoveCursor(0, -v.curC)
		case "end", "$":
			v.MoveCursor(0, v.Editor.Cols())
		case "pgup":
			v.MoveCursor(-v.visibleRows(), 0)
		case "pgdown":
			v.MoveCursor(v.visibleRows(), 0)
		case "enter":
			v.Editor.PaintCell(v.curR, v.curC)
		case "tab", "]":
			v.Editor.CycleChar(1)
		case "shift+tab", "[":
			v.Editor.CycleChar(-1)
		default:
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				v.Editor.SelectIndex(int(s[0] - '1'))
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *CanvasView) View() string {
	e := v.Editor
	var b strings.Builder

	title := Styles.Title.Render("ASCII Canvas") +
		Styles.Muted.Render(fmt.Sprintf("  %d×%d", e.Rows(), e.Cols()))
	if v.exporting {
		title += " " + v.spinner.View()
	}
	b.WriteString(title + "\n")
	b.WriteString(v.renderPalette() + "\n")
	b.WriteString(v.renderGrid() + "\n")
	b.WriteString(v.statusLine())
	return b.String()
}

func (v *CanvasView) renderPalette() string {
	e := v.Editor
	parts := []string{Styles.Muted.Render("Palette")}
	paint := e.PaintIndex()
	for i, ch := range e.Palette() {
		label := textutil.PaletteLabel(ch)
		if i < 9 {
			label = fmt.Sprintf("%d:%s", i+1, label)
		}
		if i == paint {
			parts = append(parts, Styles.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, Styles.Normal.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (v *CanvasView) renderGrid() string {
	e := v.Editor
	colors := e.Colors()
	g := e.Grid()

	rows := make([]string, 0, v.visibleRows())
	for r := v.rowOff; r < v.rowOff+v.visibleRows(); r++ {
		rows = append(rows, v.renderRow(g, r, colors))
	}
	return frameStyle(colors).Render(strings.Join(rows, "\n"))
}

func (v *CanvasView) renderRow(g *grid.Grid, r int, colors style.Pair) string {
	cells := canvasStyle(colors)
	end := v.colOff + v.visibleCols()

	var out, run strings.Builder
	for c := v.colOff; c < end; c++ {
		cell := textutil.Cell(g.At(r, c))
		if r == v.curR && c == v.curC {
			if run.Len() > 0 {
				out.WriteString(cells.Render(run.String()))
				run.Reset()
			}
			out.WriteString(cursorStyle(colors).Render(cell))
			continue
		}
		run.WriteString(cell)
	}
	if run.Len() > 0 {
		out.WriteString(cells.Render(run.String()))
	}
	return out.String()
}

func (v *CanvasView) statusLine() string {
	e := v.Editor
	colors := e.Colors()
	parts := []string{
		fmt.Sprintf("(%d,%d)", v.curR+1, v.curC+1),
		"paint " + textutil.PaletteLabel(e.PaintChar()),
		fmt.Sprintf("%d painted", e.Grid().Painted()),
		"text " + swatch(colors.Text) + " " + colors.Text.Hex(),
		"bg " + swatch(colors.Background) + " " + colors.Background.Hex(),
	}
	if vr, vc := v.visibleRows(), v.visibleCols(); vr < e.Rows() || vc < e.Cols() {
		parts = append(parts, fmt.Sprintf("rows %d-%d cols %d-%d",
			v.rowOff+1, v.rowOff+vr, v.colOff+1, v.colOff+vc))
	}
	return Styles.Muted.Render(strings.Join(parts, "  "))
}
