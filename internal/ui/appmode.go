package ui

// AppMode is the top-level screen: the setup form or the canvas editor.
type AppMode int

const (
	ModeSetup AppMode = iota
	ModeEditor
)

func (m AppMode) String() string {
	switch m {
	case ModeSetup:
		return "Setup"
	case ModeEditor:
		return "Editor"
	default:
		return "Unknown"
	}
}
