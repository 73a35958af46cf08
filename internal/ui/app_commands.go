package ui

import (
	"context"
	"log"
	"time"

	"asciicanvas/internal/editor"
	"asciicanvas/internal/export"
	"asciicanvas/internal/settings"

	tea "github.com/charmbracelet/bubbletea"
)

// exportCmd writes the artifacts of snap off the event loop. The snapshot is
// taken by the caller inside Update, so later edits cannot reach it.
func exportCmd(w *export.Writer, snap editor.Snapshot, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if w == nil {
			return ExportDoneMsg{}
		}
		return ExportDoneMsg{Result: snap.Export(context.Background(), w, now)}
	}
}

// saveSettingsCmd persists the handoff so the next run can resume it.
func saveSettingsCmd(store *settings.Store, s settings.Settings) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return SettingsSavedMsg{}
		}
		if err := store.Save(s); err != nil {
			log.Printf("ui: saving settings: %v", err)
			return SettingsSavedMsg{Err: err}
		}
		return SettingsSavedMsg{Path: store.Path()}
	}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
