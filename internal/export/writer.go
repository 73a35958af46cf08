package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"asciicanvas/internal/grid"
	"asciicanvas/internal/style"
	"asciicanvas/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("asciicanvas/export")

// Artifact is the outcome of writing one export file.
type Artifact struct {
	Format Format
	Path   string // set on success
	Err    error
}

// Result holds both artifacts of an export. Each succeeds or fails on its own.
type Result struct {
	Text  Artifact
	Image Artifact
}

// Err joins the errors of both artifacts.
func (r Result) Err() error {
	return errors.Join(r.Text.Err, r.Image.Err)
}

// Paths returns the paths of the artifacts that were written.
func (r Result) Paths() []string {
	var out []string
	for _, a := range []Artifact{r.Text, r.Image} {
		if a.Err == nil && a.Path != "" {
			out = append(out, a.Path)
		}
	}
	return out
}

// Writer writes export artifacts into a directory.
type Writer struct {
	Dir   string
	Text  Exporter
	Image Exporter
}

// NewWriter returns a writer for dir using the text and 20x20 PNG exporters.
func NewWriter(dir string) *Writer {
	return &Writer{
		Dir:   dir,
		Text:  TextExporter{},
		Image: NewPNGExporter(),
	}
}

// WriteAll writes the text and image artifacts for the same snapshot.
// A failure of one does not prevent the other.
func (w *Writer) WriteAll(ctx context.Context, g *grid.Grid, colors style.Pair, now time.Time) Result {
	ctx, span := tracer.Start(ctx, "export.all")
	defer span.End()
	span.SetAttributes(
		attribute.Int("asciicanvas.grid.rows", g.Rows()),
		attribute.Int("asciicanvas.grid.cols", g.Cols()),
	)

	res := Result{
		Text:  w.artifact(ctx, w.Text, g, colors, now),
		Image: w.artifact(ctx, w.Image, g, colors, now),
	}
	if err := res.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return res
}

func (w *Writer) artifact(ctx context.Context, e Exporter, g *grid.Grid, colors style.Pair, now time.Time) Artifact {
	if e == nil {
		return Artifact{Err: errors.New("no exporter configured")}
	}
	name := Filename(e.Format(), now)
	path, err := w.Write(ctx, e, name, g, colors)
	if err != nil {
		log.Printf("export: %s failed: %v", e.Format(), err)
	}
	return Artifact{Format: e.Format(), Path: path, Err: err}
}

// Write exports g into Dir/name. Output goes to a temporary file that is
// renamed into place on success and removed on every failure path.
func (w *Writer) Write(ctx context.Context, e Exporter, name string, g *grid.Grid, colors style.Pair) (string, error) {
	ctx, span := tracer.Start(ctx, "export.write")
	defer span.End()
	span.SetAttributes(
		attribute.String("asciicanvas.export.format", string(e.Format())),
		attribute.String("asciicanvas.export.mime", e.Format().MIMEType()),
		attribute.String("asciicanvas.export.name", name),
	)

	path, err := w.write(ctx, e, name, g, colors)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return path, nil
}

func (w *Writer) write(ctx context.Context, e Exporter, name string, g *grid.Grid, colors style.Pair) (string, error) {
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := e.Export(ctx, tmp, g, colors); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return path, nil
}
