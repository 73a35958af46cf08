package ui

import (
	"fmt"
	"time"

	"asciicanvas/internal/editor"
	"asciicanvas/internal/export"
	"asciicanvas/internal/grid"
	"asciicanvas/internal/settings"
	"asciicanvas/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures NewAppModel.
type Options struct {
	// Settings is the handoff the first canvas is built from. Nil uses defaults.
	Settings *settings.Settings
	// Setup starts in the setup form, prefilled from Settings.
	Setup bool
	// Grid, when set, is loaded into the first canvas. It must match the
	// dimensions Settings resolves to.
	Grid *grid.Grid
	// Store receives the handoff whenever the setup form is submitted. May be nil.
	Store *settings.Store
	// Writer performs downloads. May be nil, which disables exporting.
	Writer *export.Writer
	// Now stamps export filenames. Defaults to time.Now.
	Now func() time.Time
}

// AppModel is the root model. It switches between the setup form and the
// canvas editor and owns the overlays drawn over either.
type AppModel struct {
	Mode       AppMode
	Setup      *SetupView
	Canvas     *CanvasView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Store      *settings.Store
	Writer     *export.Writer
	Now        func() time.Time

	// Status is the outcome of the last action, shown under the canvas.
	Status        string
	StatusIsError bool

	width, height int
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) (*AppModel, error) {
	a := &AppModel{
		KeyHandler: NewKeyHandler(newKeybindRegistry()),
		Store:      opts.Store,
		Writer:     opts.Writer,
		Now:        opts.Now,
	}
	if a.Now == nil {
		a.Now = time.Now
	}

	if opts.Setup {
		a.Mode = ModeSetup
		a.Setup = NewSetupView(opts.Settings.Resolve())
		return a, nil
	}

	ed, err := editor.New(opts.Settings)
	if err != nil {
		return nil, err
	}
	if opts.Grid != nil {
		if err := ed.Load(opts.Grid); err != nil {
			return nil, fmt.Errorf("loading canvas: %w", err)
		}
	}
	a.Mode = ModeEditor
	a.Canvas = NewCanvasView(ed)
	return a, nil
}

// newKeybindRegistry binds the editor commands. Everything is editor-only:
// the setup form needs every key for its inputs.
func newKeybindRegistry() *KeybindRegistry {
	editorOnly := []AppMode{ModeEditor}
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "Quit", editorOnly)
	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", editorOnly)
	reg.BindWithDescForMode("SPC d", msgCmd(ExportMsg{}), "Download", editorOnly)
	reg.BindWithDescForMode("SPC a", msgCmd(ShowAddCharMsg{}), "Add character", editorOnly)
	reg.BindWithDescForMode("SPC x", msgCmd(ShowClearMsg{}), "Clear", editorOnly)
	reg.BindWithDescForMode("SPC p", msgCmd(ShowPreviewMsg{}), "Preview", editorOnly)
	reg.BindWithDescForMode("SPC n", msgCmd(ShowSetupMsg{}), "New canvas", editorOnly)
	reg.BindWithDescForMode("SPC c t", msgCmd(ShowColorMsg{Target: TargetText}), "Text color", editorOnly)
	reg.BindWithDescForMode("SPC c b", msgCmd(ShowColorMsg{Target: TargetBackground}), "Background color", editorOnly)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if v := a.currentView(); v != nil {
		return v.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case StartEditorMsg:
		return a.handleStartEditor(msg)
	case SettingsSavedMsg:
		return a.handleSettingsSaved(msg)
	case ShowSetupMsg:
		return a.handleShowSetup()
	case ExportMsg:
		return a.handleExport()
	case ExportDoneMsg:
		return a.handleExportDone(msg)
	case ShowAddCharMsg:
		return a.handleShowAddChar()
	case AddCharMsg:
		return a.handleAddChar(msg)
	case ShowClearMsg:
		return a.handleShowClear()
	case ClearGridMsg:
		return a.handleClearGrid()
	case ShowColorMsg:
		return a.handleShowColor(msg)
	case SetColorMsg:
		return a.handleSetColor(msg)
	case ShowPreviewMsg:
		return a.handleShowPreview()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil && a.Mode == ModeEditor {
			a.KeyHandler.Mode = a.Mode
			if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
				return a, cmd
			}
		}
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
	}

	// Everything else (blinks, spinner ticks, unhandled keys) goes to the
	// top overlay and the current screen.
	var cmds []tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			cmds = append(cmds, cmd)
		}
	}
	if v := a.currentView(); v != nil {
		nv, cmd := v.Update(msg)
		a.setCurrentView(nv)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	v := a.currentView()
	if v == nil {
		return ""
	}
	base := v.View()
	if a.Status != "" {
		st := Styles.Status
		if a.StatusIsError {
			st = Styles.Error
		}
		status := a.Status
		if a.width > 0 {
			status = textutil.Truncate(status, a.width)
		}
		base += "\n" + st.Render(status)
	}
	if a.Mode == ModeEditor {
		if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
			base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode, a.width)
		} else {
			base += "\n" + Styles.Hint.Render("SPC: commands  ←↓↑→/hjkl: move  Enter/click: paint  1-9/Tab: pick  q: quit")
		}
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeSetup:
		if a.Setup != nil {
			return a.Setup
		}
	case ModeEditor:
		if a.Canvas != nil {
			return a.Canvas
		}
	}
	return nil
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeSetup:
		if s, ok := v.(*SetupView); ok {
			a.Setup = s
		}
	case ModeEditor:
		if c, ok := v.(*CanvasView); ok {
			a.Canvas = c
		}
	}
}

func (a *AppModel) setStatus(isError bool, format string, args ...any) {
	a.Status = fmt.Sprintf(format, args...)
	a.StatusIsError = isError
}
