package ui

import (
	"asciicanvas/internal/export"
	"asciicanvas/internal/settings"
)

// ColorTarget selects which half of the color pair a modal edits.
type ColorTarget int

const (
	TargetText ColorTarget = iota
	TargetBackground
)

func (t ColorTarget) String() string {
	if t == TargetBackground {
		return "Background"
	}
	return "Text"
}

// StartEditorMsg is sent when the setup form is submitted.
type StartEditorMsg struct {
	Settings settings.Settings
}

// SettingsSavedMsg reports the outcome of persisting the settings handoff.
type SettingsSavedMsg struct {
	Path string
	Err  error
}

// ShowSetupMsg returns to the setup form to start a new canvas (SPC n).
type ShowSetupMsg struct{}

// ExportMsg starts a download of both artifacts (SPC d).
type ExportMsg struct{}

// ExportDoneMsg carries the outcome of an export started by ExportMsg.
type ExportDoneMsg struct {
	Result export.Result
}

// ShowAddCharMsg opens the add-character modal (SPC a).
type ShowAddCharMsg struct{}

// AddCharMsg is sent when the add-character modal is submitted.
type AddCharMsg struct {
	Char string
}

// ShowClearMsg opens the clear confirmation (SPC x).
type ShowClearMsg struct{}

// ClearGridMsg is sent when the user confirms clearing the canvas.
type ClearGridMsg struct{}

// ShowColorMsg opens the color modal for Target (SPC c t / SPC c b).
type ShowColorMsg struct {
	Target ColorTarget
}

// SetColorMsg is sent when a color modal is submitted with a valid hex value.
type SetColorMsg struct {
	Target ColorTarget
	Hex    string
}

// ShowPreviewMsg opens the text preview window (SPC p).
type ShowPreviewMsg struct{}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}
