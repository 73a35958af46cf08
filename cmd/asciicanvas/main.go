package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"asciicanvas/internal/editor"
	"asciicanvas/internal/export"
	"asciicanvas/internal/grid"
	"asciicanvas/internal/settings"
	"asciicanvas/internal/telemetry"
	"asciicanvas/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// LogEnv names a log file used when -log is not given.
const LogEnv = "ASCIICANVAS_LOG"

// exportAll writes both artifacts from the -export flag.
const exportAll = "all"

// config holds the parsed CLI configuration.
type config struct {
	rows      int
	cols      int
	textColor string
	bgColor   string
	setup     bool
	outDir    string
	load      string
	export    string
	logFile   string
	verbose   bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("asciicanvas", flag.ContinueOnError)

	fs.IntVar(&cfg.rows, "rows", 0, fmt.Sprintf("canvas height in cells (%d-%d)", settings.MinDimension, settings.MaxDimension))
	fs.IntVar(&cfg.cols, "cols", 0, fmt.Sprintf("canvas width in cells (%d-%d)", settings.MinDimension, settings.MaxDimension))
	fs.StringVar(&cfg.textColor, "text-color", "", "character color as #RRGGBB")
	fs.StringVar(&cfg.bgColor, "bg-color", "", "background color as #RRGGBB")
	fs.BoolVar(&cfg.setup, "setup", false, "start in the setup form")
	fs.StringVar(&cfg.outDir, "out", ".", "directory downloads are written to")
	fs.StringVar(&cfg.load, "load", "", "seed the canvas from a text export")
	fs.StringVar(&cfg.export, "export", "", "render headlessly and exit: "+exportChoices())
	fs.StringVar(&cfg.logFile, "log", "", "append logs to this file (default $"+LogEnv+")")
	fs.BoolVar(&cfg.verbose, "verbose", false, "enable detailed logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: asciicanvas [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Paint ASCII art on a fixed-size grid and download it as text and PNG.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		fs.Usage()
		return cfg, err
	}
	if cfg.logFile == "" {
		cfg.logFile = os.Getenv(LogEnv)
	}
	return cfg, nil
}

// exportChoices lists the values -export accepts.
func exportChoices() string {
	var names []string
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ") + " or " + exportAll
}

func (c config) validate() error {
	var errs []error
	if c.rows != 0 && !settings.InRange(c.rows) {
		errs = append(errs, fmt.Errorf("-rows %d: %w", c.rows, settings.ErrOutOfRange))
	}
	if c.cols != 0 && !settings.InRange(c.cols) {
		errs = append(errs, fmt.Errorf("-cols %d: %w", c.cols, settings.ErrOutOfRange))
	}
	if c.export != "" && c.export != exportAll {
		if _, err := export.ParseFormat(c.export); err != nil {
			errs = append(errs, fmt.Errorf("-export: %w", err))
		}
	}
	if c.export != "" && c.setup {
		errs = append(errs, errors.New("-export and -setup are mutually exclusive"))
	}
	return errors.Join(errs...)
}

// setupLogging sends the standard logger to the log file, or discards it:
// the terminal belongs to the TUI.
func setupLogging(cfg config) (io.Closer, error) {
	if cfg.logFile == "" {
		if cfg.export != "" && cfg.verbose {
			return nil, nil // headless: keep stderr
		}
		log.SetOutput(io.Discard)
		return nil, nil
	}
	return tea.LogToFile(cfg.logFile, "asciicanvas")
}

func run(ctx context.Context, cfg config) error {
	closer, err := setupLogging(cfg)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	tp, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("telemetry: disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	store, err := settings.NewStore()
	if err != nil {
		log.Printf("settings: no state directory: %v", err)
		store = nil
	}

	var stored *settings.Settings
	if store != nil && !cfg.setup {
		stored, err = store.Load()
		if err != nil {
			log.Printf("settings: ignoring stored handoff: %v", err)
		} else if stored != nil && cfg.verbose {
			if err := stored.Validate(); err != nil {
				log.Printf("settings: stored handoff falls back to defaults: %v", err)
			}
		}
	}
	handoff := buildHandoff(cfg, stored)

	var seed *grid.Grid
	if cfg.load != "" {
		seed, err = loadGrid(cfg.load)
		if err != nil {
			return err
		}
		handoff.Height, handoff.Width = seed.Rows(), seed.Cols()
	}

	if cfg.verbose {
		log.Printf("config: handoff=%+v setup=%v out=%s load=%q export=%q",
			handoff, cfg.setup, cfg.outDir, cfg.load, cfg.export)
	}

	writer := export.NewWriter(cfg.outDir)
	if cfg.export != "" {
		return runHeadless(ctx, cfg.export, handoff, seed, writer, os.Stdout)
	}

	model, err := ui.NewAppModel(ui.Options{
		Settings: handoff,
		Setup:    cfg.setup,
		Grid:     seed,
		Store:    store,
		Writer:   writer,
	})
	if err != nil {
		return err
	}
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// buildHandoff overlays the size and color flags on the stored handoff.
// Fields left unset fall back to defaults when the editor resolves them.
func buildHandoff(cfg config, stored *settings.Settings) *settings.Settings {
	var s settings.Settings
	if stored != nil {
		s = *stored
	}
	if cfg.rows != 0 {
		s.Height = cfg.rows
	}
	if cfg.cols != 0 {
		s.Width = cfg.cols
	}
	if cfg.textColor != "" {
		s.TextColor = cfg.textColor
	}
	if cfg.bgColor != "" {
		s.BackgroundColor = cfg.bgColor
	}
	return &s
}

// loadGrid reads a text export. Its dimensions must be valid canvas sizes.
func loadGrid(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := grid.ParseText(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if !settings.InRange(g.Rows()) || !settings.InRange(g.Cols()) {
		return nil, fmt.Errorf("%s is %dx%d: %w", path, g.Rows(), g.Cols(), settings.ErrOutOfRange)
	}
	return g, nil
}

// runHeadless renders the canvas without a terminal and prints the paths written.
func runHeadless(ctx context.Context, format string, handoff *settings.Settings, seed *grid.Grid, w *export.Writer, out io.Writer) error {
	ed, err := editor.New(handoff)
	if err != nil {
		return err
	}
	if seed != nil {
		if err := ed.Load(seed); err != nil {
			return err
		}
	}
	now := time.Now()

	if format == exportAll {
		res := ed.ExportAll(ctx, w, now)
		for _, p := range res.Paths() {
			fmt.Fprintln(out, p)
		}
		return res.Err()
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	e, err := export.NewExporter(f)
	if err != nil {
		return err
	}
	snap := ed.Snapshot()
	path, err := w.Write(ctx, e, export.Filename(f, now), snap.Grid, snap.Colors)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, path)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "asciicanvas: %v\n", err)
		os.Exit(2)
	}
	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "asciicanvas: %v\n", err)
		os.Exit(1)
	}
}
