package settings

import (
	"os"
	"path/filepath"
	"testing"

	"asciicanvas/internal/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, style.DefaultPair, d.Colors)
	assert.Equal(t, DefaultTextColor, d.Colors.Text.Hex())
	assert.Equal(t, DefaultBackgroundColor, d.Colors.Background.Hex())
}

func TestResolve(t *testing.T) {
	red := style.Color{R: 255}
	green := style.Color{G: 255}

	tests := []struct {
		name string
		in   *Settings
		want Resolved
	}{
		{
			name: "nil uses defaults",
			in:   nil,
			want: Resolved{Rows: 20, Cols: 40, Colors: style.DefaultPair},
		},
		{
			name: "full handoff",
			in:   &Settings{Height: 10, Width: 10, TextColor: "#ff0000", BackgroundColor: "#00ff00"},
			want: Resolved{Rows: 10, Cols: 10, Colors: style.Pair{Text: red, Background: green}},
		},
		{
			name: "missing width",
			in:   &Settings{Height: 12, TextColor: "#ff0000", BackgroundColor: "#00ff00"},
			want: Resolved{Rows: 12, Cols: 40, Colors: style.Pair{Text: red, Background: green}},
		},
		{
			name: "out of range dimensions",
			in:   &Settings{Height: 4, Width: 201},
			want: Resolved{Rows: 20, Cols: 40, Colors: style.DefaultPair},
		},
		{
			name: "malformed colors",
			in:   &Settings{Height: 5, Width: 200, TextColor: "red", BackgroundColor: "#12"},
			want: Resolved{Rows: 5, Cols: 200, Colors: style.DefaultPair},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Resolve())
		})
	}
}

func TestValidate(t *testing.T) {
	ok := Settings{Height: 5, Width: 200, TextColor: "#000000", BackgroundColor: "#ffffff"}
	assert.NoError(t, ok.Validate())

	bad := Settings{Height: 0, Width: 300, TextColor: "#000000", BackgroundColor: "white"}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, err, style.ErrMalformedColor)
	assert.Contains(t, err.Error(), "height 0")
	assert.Contains(t, err.Error(), "width 300")
	assert.NotContains(t, err.Error(), "text color")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *Settings
		wantErr bool
	}{
		{
			name: "numbers",
			data: `{"height":10,"width":10,"textColor":"#ff0000","backgroundColor":"#00ff00"}`,
			want: &Settings{Height: 10, Width: 10, TextColor: "#ff0000", BackgroundColor: "#00ff00"},
		},
		{
			name: "numeric strings",
			data: `{"height":"15","width":"30"}`,
			want: &Settings{Height: 15, Width: 30},
		},
		{
			name: "wrong types are dropped",
			data: `{"height":true,"width":[1],"textColor":5,"backgroundColor":"#000"}`,
			want: &Settings{BackgroundColor: "#000"},
		},
		{
			name: "missing width",
			data: `{"height":10}`,
			want: &Settings{Height: 10},
		},
		{
			name: "overflowing field falls back alone",
			data: `{"height":1e400,"width":12,"textColor":"#ff0000"}`,
			want: &Settings{Width: 12, TextColor: "#ff0000"},
		},
		{name: "not an object", data: `[]`, wantErr: true},
		{name: "garbage", data: `{{{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_MissingWidthResolvesToDefault(t *testing.T) {
	s, err := Decode([]byte(`{"height":10,"textColor":"#ff0000","backgroundColor":"#00ff00"}`))
	require.NoError(t, err)
	assert.Equal(t, 40, s.Resolve().Cols)
}

func TestFromResolved(t *testing.T) {
	r := Resolved{Rows: 7, Cols: 9, Colors: style.Pair{Text: style.White, Background: style.Black}}
	s := FromResolved(r)
	assert.Equal(t, Settings{Height: 7, Width: 9, TextColor: "#ffffff", BackgroundColor: "#000000"}, s)
	assert.Equal(t, r, s.Resolve())
}

func TestStore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(filepath.Join(dir, "state"))

	got, err := store.Load()
	require.NoError(t, err, "missing file is not an error")
	assert.Nil(t, got)

	want := Settings{Height: 30, Width: 60, TextColor: "#112233", BackgroundColor: "#ddeeff"}
	require.NoError(t, store.Save(want))

	got, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	// Second save replaces the first and leaves no temp files behind.
	require.NoError(t, store.Save(Settings{Height: 5, Width: 5}))
	entries, err := os.ReadDir(store.BaseDir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}

func TestStore_MalformedContent(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(dir)
	require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0o644))

	got, err := store.Load()
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, Defaults(), got.Resolve(), "callers fall back to defaults")
}

func TestNewStore_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(StateDirEnv, dir)

	store, err := NewStore()
	require.NoError(t, err)
	assert.Equal(t, dir, store.BaseDir())
	assert.Equal(t, filepath.Join(dir, FileName), store.Path())
}
