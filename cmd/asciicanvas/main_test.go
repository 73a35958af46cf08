package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asciicanvas/internal/export"
	"asciicanvas/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg config)
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, cfg config) {
				assert.Zero(t, cfg.rows)
				assert.Zero(t, cfg.cols)
				assert.Equal(t, ".", cfg.outDir)
				assert.False(t, cfg.setup)
			},
		},
		{
			name: "size and colors",
			args: []string{"-rows", "10", "-cols", "12", "-text-color", "#ff0000", "-bg-color", "#00ff00"},
			check: func(t *testing.T, cfg config) {
				assert.Equal(t, 10, cfg.rows)
				assert.Equal(t, 12, cfg.cols)
				assert.Equal(t, "#ff0000", cfg.textColor)
				assert.Equal(t, "#00ff00", cfg.bgColor)
			},
		},
		{name: "rows too small", args: []string{"-rows", "4"}, wantErr: true},
		{name: "cols too large", args: []string{"-cols", "201"}, wantErr: true},
		{name: "unknown export", args: []string{"-export", "gif"}, wantErr: true},
		{name: "export all", args: []string{"-export", "all"}},
		{name: "export with setup", args: []string{"-export", "png", "-setup"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LogEnv, "")
			cfg, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestExportChoices(t *testing.T) {
	assert.Equal(t, "text, png or all", exportChoices())
}

func TestParseFlags_LogEnv(t *testing.T) {
	t.Setenv(LogEnv, "/tmp/asciicanvas.log")
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/asciicanvas.log", cfg.logFile)

	cfg, err = parseFlags([]string{"-log", "other.log"})
	require.NoError(t, err)
	assert.Equal(t, "other.log", cfg.logFile)
}

func TestBuildHandoff(t *testing.T) {
	stored := &settings.Settings{Height: 30, Width: 60, TextColor: "#111111", BackgroundColor: "#eeeeee"}

	got := buildHandoff(config{cols: 15, bgColor: "#000000"}, stored)
	assert.Equal(t, settings.Settings{Height: 30, Width: 15, TextColor: "#111111", BackgroundColor: "#000000"}, *got)
	assert.Equal(t, 60, stored.Width, "stored handoff is not modified")

	empty := buildHandoff(config{}, nil)
	assert.Equal(t, settings.Defaults(), empty.Resolve())
}

func TestLoadGrid(t *testing.T) {
	dir := t.TempDir()

	ok := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(ok, []byte(strings.Repeat("@    \n", 5)), 0o644))
	g, err := loadGrid(ok)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 5, g.Count('@'))

	small := filepath.Join(dir, "small.txt")
	require.NoError(t, os.WriteFile(small, []byte(" @ \n   "), 0o644))
	_, err = loadGrid(small)
	assert.ErrorIs(t, err, settings.ErrOutOfRange)

	_, err = loadGrid(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestRunHeadless_Text(t *testing.T) {
	dir := t.TempDir()
	g, err := loadGrid(writeArt(t))
	require.NoError(t, err)

	var out bytes.Buffer
	handoff := &settings.Settings{Height: g.Rows(), Width: g.Cols()}
	err = runHeadless(context.Background(), "text", handoff, g, export.NewWriter(dir), &out)
	require.NoError(t, err)

	path := strings.TrimSpace(out.String())
	assert.Equal(t, dir, filepath.Dir(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Text(), string(data))
}

func TestRunHeadless_All(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := runHeadless(context.Background(), exportAll, &settings.Settings{Height: 5, Width: 5}, nil, export.NewWriter(dir), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ".txt"))
	assert.True(t, strings.HasSuffix(lines[1], ".png"))
}

func writeArt(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "art.txt")
	art := "#####\n#   #\n# @ #\n#   #\n#####"
	require.NoError(t, os.WriteFile(p, []byte(art), 0o644))
	return p
}
