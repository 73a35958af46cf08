package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("ab", 4); got != "ab  " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadRightVisual("日", 3); got != "日 " {
		t.Errorf("PadRightVisual wide = %q", got)
	}
	if got := VisualWidth(PadRightVisual("abcdef", 4)); got != 4 {
		t.Errorf("truncated width = %d, want 4", got)
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		ch   rune
		want string
	}{
		{'@', "@ "},
		{' ', "  "},
		{'日', "日"},
		{'\u0301', "  "},
	}
	for _, tt := range tests {
		got := Cell(tt.ch)
		if got != tt.want {
			t.Errorf("Cell(%q) = %q, want %q", tt.ch, got, tt.want)
		}
		if w := VisualWidth(got); w != CellWidth {
			t.Errorf("Cell(%q) width = %d, want %d", tt.ch, w, CellWidth)
		}
	}
}

func TestPaletteLabel(t *testing.T) {
	if PaletteLabel(' ') != VisibleSpace {
		t.Error("space should be made visible")
	}
	if PaletteLabel('#') != "#" {
		t.Error("other characters are shown as-is")
	}
}
