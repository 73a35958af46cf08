package ui

import (
	"log"
	"path/filepath"
	"strings"

	"asciicanvas/internal/editor"
	"asciicanvas/internal/export"
	"asciicanvas/internal/settings"
	"asciicanvas/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSize records the terminal size and forwards it to every screen
// and overlay so they can lay themselves out.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	if a.Canvas != nil {
		a.Canvas.SetSize(msg.Width, msg.Height)
	}
	for i := range a.Overlays.Stack {
		v, _ := a.Overlays.Stack[i].View.Update(msg)
		a.Overlays.Stack[i].View = v
	}
	return a, nil
}

// handleStartEditor builds a new canvas from the submitted setup form and
// persists the handoff.
func (a *appModelAdapter) handleStartEditor(msg StartEditorMsg) (tea.Model, tea.Cmd) {
	ed, err := editor.New(&msg.Settings)
	if err != nil {
		a.setStatus(true, "New canvas: %v", err)
		return a, nil
	}
	a.Canvas = NewCanvasView(ed)
	a.Canvas.SetSize(a.width, a.height)
	a.Mode = ModeEditor
	a.Setup = nil
	a.Overlays.Reset()
	a.KeyHandler.Reset()
	a.setStatus(false, "New canvas %d×%d", ed.Rows(), ed.Cols())
	return a, saveSettingsCmd(a.Store, ed.Settings())
}

func (a *appModelAdapter) handleSettingsSaved(msg SettingsSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.setStatus(true, "Save settings: %v", msg.Err)
	}
	return a, nil
}

// handleShowSetup returns to the setup form, prefilled from the current canvas.
func (a *appModelAdapter) handleShowSetup() (tea.Model, tea.Cmd) {
	initial := settings.Defaults()
	if a.Canvas != nil {
		s := a.Canvas.Editor.Settings()
		initial = s.Resolve()
	}
	a.Mode = ModeSetup
	a.Setup = NewSetupView(initial)
	a.Overlays.Reset()
	a.Status = ""
	return a, a.Setup.Init()
}

// handleExport snapshots the canvas now and writes the artifacts in the
// background. Only one export runs at a time.
func (a *appModelAdapter) handleExport() (tea.Model, tea.Cmd) {
	if a.Canvas == nil || a.Canvas.Exporting() {
		return a, nil
	}
	if a.Writer == nil {
		a.setStatus(true, "Download: no output directory configured")
		return a, nil
	}
	snap := a.Canvas.Editor.Snapshot()
	a.setStatus(false, "Downloading…")
	return a, tea.Batch(
		a.Canvas.SetExporting(true),
		exportCmd(a.Writer, snap, a.Now()),
	)
}

func (a *appModelAdapter) handleExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if a.Canvas != nil {
		a.Canvas.SetExporting(false)
	}
	status, isErr := exportStatus(msg.Result)
	a.setStatus(isErr, "%s", status)
	return a, nil
}

// exportStatus summarizes an export for the status line.
func exportStatus(res export.Result) (string, bool) {
	var saved, failed []string
	for _, art := range []export.Artifact{res.Text, res.Image} {
		if art.Err != nil {
			failed = append(failed, string(art.Format)+": "+art.Err.Error())
			continue
		}
		if art.Path != "" {
			saved = append(saved, filepath.Base(art.Path))
		}
	}
	var parts []string
	if len(saved) > 0 {
		parts = append(parts, "Saved "+strings.Join(saved, ", "))
	}
	if len(failed) > 0 {
		parts = append(parts, "Failed "+strings.Join(failed, "; "))
	}
	if len(parts) == 0 {
		return "Nothing exported", true
	}
	return strings.Join(parts, ". "), len(failed) > 0
}

func (a *appModelAdapter) handleShowAddChar() (tea.Model, tea.Cmd) {
	if a.Canvas == nil {
		return a, nil
	}
	m := NewAddCharModal(a.Canvas.Editor.CanAdd)
	a.Overlays.Push(m)
	return a, m.Init()
}

// handleAddChar appends to the palette. Invalid input is dropped silently.
func (a *appModelAdapter) handleAddChar(msg AddCharMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if a.Canvas == nil {
		return a, nil
	}
	if a.Canvas.Editor.AddCharacter(msg.Char) {
		log.Printf("ui: palette now %q", paletteSummary(a.Canvas.Editor))
		a.setStatus(false, "Added %s to the palette", msg.Char)
	}
	return a, nil
}

func (a *appModelAdapter) handleShowClear() (tea.Model, tea.Cmd) {
	if a.Canvas == nil {
		return a, nil
	}
	ed := a.Canvas.Editor
	a.Overlays.Push(NewClearConfirmModal(ed.Rows(), ed.Cols(), ed.Grid().Painted()))
	return a, nil
}

func (a *appModelAdapter) handleClearGrid() (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if a.Canvas == nil {
		return a, nil
	}
	a.Canvas.Editor.Clear()
	a.setStatus(false, "Canvas cleared")
	return a, nil
}

func (a *appModelAdapter) handleShowColor(msg ShowColorMsg) (tea.Model, tea.Cmd) {
	if a.Canvas == nil {
		return a, nil
	}
	colors := a.Canvas.Editor.Colors()
	current := colors.Text
	if msg.Target == TargetBackground {
		current = colors.Background
	}
	m := NewColorModal(msg.Target, current)
	a.Overlays.Push(m)
	return a, m.Init()
}

func (a *appModelAdapter) handleSetColor(msg SetColorMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if a.Canvas == nil {
		return a, nil
	}
	ed := a.Canvas.Editor
	set := ed.SetTextColorHex
	if msg.Target == TargetBackground {
		set = ed.SetBackgroundColorHex
	}
	if err := set(msg.Hex); err != nil {
		log.Printf("ui: set %s color %q: %v", msg.Target, msg.Hex, err)
		a.setStatus(true, "%s color: %v", msg.Target, err)
		return a, nil
	}
	a.setStatus(false, "%s color %s", msg.Target, msg.Hex)
	return a, nil
}

func (a *appModelAdapter) handleShowPreview() (tea.Model, tea.Cmd) {
	if a.Canvas == nil {
		return a, nil
	}
	snap := a.Canvas.Editor.Snapshot()
	p := NewPreviewWindow(snap.Grid, snap.Colors, a.width, a.height)
	a.Overlays.Push(p)
	return a, p.Init()
}

// paletteSummary lists the palette for log lines.
func paletteSummary(ed *editor.Editor) string {
	var b strings.Builder
	for _, ch := range ed.Palette() {
		b.WriteString(textutil.PaletteLabel(ch))
	}
	return b.String()
}
