package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pptxtract"
	"github.com/fwojciec/pptxtract/etree"
	"github.com/fwojciec/pptxtract/extract"
	"github.com/fwojciec/pptxtract/fs"
	ptslog "github.com/fwojciec/pptxtract/slog"
	"github.com/fwojciec/pptxtract/zip"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Flags backed by environment variables may be set in a local .env file.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor overrides the extractor built from flags. Used in tests.
	Extractor pptxtract.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pptxtract"),
		kong.Description("Extract slide text, speaker notes and media from .pptx files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pptxtract --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Extractor = m.Extractor
	if deps.Extractor == nil {
		deps.Extractor = newExtractor(cli, logger)
	}
	deps.NewStore = func(dir string) pptxtract.ResultStore {
		return fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
	}

	return kongCtx.Run(deps)
}

// newExtractor wires the zip loader and etree slide parser with logging.
func newExtractor(cli *CLI, logger *slog.Logger) pptxtract.Extractor {
	loader := ptslog.NewLoggingArchiveLoader(zip.NewLoader(zip.WithLogger(logger)), logger)
	parser := ptslog.NewLoggingSlideParser(etree.NewSlideParser(), logger)

	ex := extract.New(
		extract.WithLoader(loader),
		extract.WithSlideParser(parser),
		extract.WithConcurrency(cli.Concurrency),
		extract.WithExcludeRels(cli.ExcludeRels),
	)
	return ptslog.NewLoggingExtractor(ex, logger)
}
