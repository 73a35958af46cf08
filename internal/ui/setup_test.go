package ui

import (
	"testing"

	"asciicanvas/internal/settings"
	"asciicanvas/internal/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupView_DefaultsSubmit(t *testing.T) {
	v := NewSetupView(settings.Defaults())

	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(StartEditorMsg)
	require.True(t, ok, "enter should submit valid defaults")
	assert.Equal(t, settings.Settings{
		Height:          settings.DefaultRows,
		Width:           settings.DefaultCols,
		TextColor:       settings.DefaultTextColor,
		BackgroundColor: settings.DefaultBackgroundColor,
	}, msg.Settings)
}

func TestSetupView_FocusOrder(t *testing.T) {
	v := NewSetupView(settings.Defaults())
	assert.Equal(t, fieldHeight, v.Focused())

	v.Update(keyMsg("tab"))
	assert.Equal(t, fieldWidth, v.Focused())
	v.Update(keyMsg("down"))
	v.Update(keyMsg("down"))
	assert.Equal(t, fieldBackground, v.Focused())
	v.Update(keyMsg("tab"))
	assert.Equal(t, fieldHeight, v.Focused(), "wraps to the first field")
	v.Update(keyMsg("shift+tab"))
	assert.Equal(t, fieldBackground, v.Focused())
}

func TestSetupView_TypingEditsFocusedField(t *testing.T) {
	v := NewSetupView(settings.Defaults())
	v.SetValue(fieldHeight, "")
	typeText(v, "12")
	v.Update(keyMsg("tab"))
	v.SetValue(fieldWidth, "")
	typeText(v, "34")

	s, errs := v.Settings()
	assert.Empty(t, errs)
	assert.Equal(t, 12, s.Height)
	assert.Equal(t, 34, s.Width)
}

func TestSetupView_Validation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"height too small", fieldHeight, "4"},
		{"height too large", fieldHeight, "201"},
		{"width not a number", fieldWidth, "wide"},
		{"width empty", fieldWidth, ""},
		{"bad text color", fieldText, "red"},
		{"short background", fieldBackground, "#12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSetupView(settings.Defaults())
			v.SetValue(tt.field, tt.value)

			_, cmd := v.Update(keyMsg("enter"))
			assert.Nil(t, cmd, "invalid form must not submit")
			assert.Contains(t, v.Errors(), tt.field)
			assert.Len(t, v.Errors(), 1)
			assert.Equal(t, tt.field, v.Focused(), "focus jumps to the first invalid field")
			assert.Contains(t, v.View(), v.Errors()[tt.field])
		})
	}
}

func TestSetupView_BoundsAccepted(t *testing.T) {
	v := NewSetupView(settings.Defaults())
	v.SetValue(fieldHeight, "5")
	v.SetValue(fieldWidth, "200")
	v.SetValue(fieldText, "#ABC")

	s, errs := v.Settings()
	require.Empty(t, errs)
	assert.Equal(t, 5, s.Height)
	assert.Equal(t, 200, s.Width)
	assert.Equal(t, "#aabbcc", s.TextColor)
}

func TestSetupView_Prefill(t *testing.T) {
	v := NewSetupView(settings.Resolved{
		Rows:   10,
		Cols:   10,
		Colors: style.Pair{Text: style.MustParseHex("#ff0000"), Background: style.MustParseHex("#00ff00")},
	})
	s, errs := v.Settings()
	require.Empty(t, errs)
	assert.Equal(t, settings.Settings{Height: 10, Width: 10, TextColor: "#ff0000", BackgroundColor: "#00ff00"}, s)

	out := v.View()
	assert.Contains(t, out, "New canvas")
	assert.Contains(t, out, "#ff0000")
}
