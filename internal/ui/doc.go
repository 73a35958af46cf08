// Package ui is the Bubble Tea front end of asciicanvas.
//
// Core abstractions:
//   - View: a screen or modal with its own Init/Update/View (Elm-style)
//   - AppModel: switches between the setup form and the canvas editor
//   - OverlayStack: modals drawn over the current screen; the top one gets input
//   - FocusManager: tab order across the setup form fields
//   - KeybindRegistry/KeyHandler: SPC leader sequences with mode-filtered help
package ui
