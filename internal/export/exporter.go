// Package export turns a grid snapshot into downloadable artifacts:
// a plain-text file and a PNG image, named by date.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"asciicanvas/internal/grid"
	"asciicanvas/internal/raster"
	"asciicanvas/internal/style"
)

// Format represents an export format
type Format string

const (
	// FormatText exports the grid as plain text, one line per row.
	FormatText Format = "text"
	// FormatPNG exports the grid as a raster image.
	FormatPNG Format = "png"
)

// FilenamePrefix starts every artifact name.
const FilenamePrefix = "ascii-art-"

// Exporter writes one artifact for a grid.
type Exporter interface {
	// Export writes g, styled with colors, to w.
	Export(ctx context.Context, w io.Writer, g *grid.Grid, colors style.Pair) error
	// Format returns the format this exporter produces.
	Format() Format
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatText:
		return TextExporter{}, nil
	case FormatPNG:
		return NewPNGExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt":
		return FormatText, nil
	case "png", "image":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s)", s, formatList())
	}
}

// Formats returns the formats written by an export of all artifacts, in order.
func Formats() []Format {
	return []Format{FormatText, FormatPNG}
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	default:
		return ".txt"
	}
}

// MIMEType returns the media type of the artifact.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	default:
		return "text/plain"
	}
}

// Filename returns ascii-art-YYYY-MM-DD plus the format's extension.
// The date is taken in UTC.
func Filename(f Format, t time.Time) string {
	return FilenamePrefix + t.UTC().Format(time.DateOnly) + f.Extension()
}

// TextExporter writes grid.SerializeText with no trailing metadata.
type TextExporter struct{}

// Export implements Exporter.
func (TextExporter) Export(_ context.Context, w io.Writer, g *grid.Grid, _ style.Pair) error {
	if _, err := io.WriteString(w, grid.SerializeText(g)); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}
	return nil
}

// Format implements Exporter.
func (TextExporter) Format() Format { return FormatText }

// PNGExporter rasterizes the grid with fixed-size cells.
type PNGExporter struct {
	CellWidth  int
	CellHeight int
}

// NewPNGExporter returns an exporter with 20x20 pixel cells.
func NewPNGExporter() PNGExporter {
	return PNGExporter{CellWidth: raster.DefaultCellSize, CellHeight: raster.DefaultCellSize}
}

// Export implements Exporter.
func (e PNGExporter) Export(_ context.Context, w io.Writer, g *grid.Grid, colors style.Pair) error {
	return raster.EncodePNG(w, g, e.CellWidth, e.CellHeight, colors.Text, colors.Background)
}

// Format implements Exporter.
func (PNGExporter) Format() Format { return FormatPNG }
