package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	dashboard "github.com/nanahubert30/Data-Analyst"
	"github.com/nanahubert30/Data-Analyst/internal/config"
	"github.com/nanahubert30/Data-Analyst/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input notebook specified")
	ErrInputNotFound = errors.New("notebook file not found")
)

// settings holds the effective values after merging flags over config.
type settings struct {
	outputPath  string
	template    string
	engine      dashboard.Engine
	stampFormat string
	sanitizeSVG bool
	pdf         bool
	timeout     time.Duration
}

// resolveSettings merges flags over config values. Explicitly set flags win;
// config fills the rest; built-in defaults apply last.
func resolveSettings(flags *cliFlags, cfg *config.Config) (*settings, error) {
	s := &settings{
		outputPath:  defaultOutputPath,
		template:    flags.template,
		sanitizeSVG: flags.sanitizeSVG || cfg.SVG.Sanitize,
		pdf:         flags.pdf || cfg.PDF.Enabled,
	}

	if cfg.Output.Path != "" {
		s.outputPath = cfg.Output.Path
	}
	if flags.changed("output") {
		s.outputPath = flags.output
	}

	if !flags.changed("template") && cfg.Template != "" {
		s.template = cfg.Template
	}

	engine := cfg.Markdown.Engine
	if flags.changed("engine") {
		engine = flags.engine
	}
	s.engine = dashboard.Engine(engine)
	if err := s.engine.Validate(); err != nil {
		return nil, err
	}

	s.stampFormat = cfg.Stamp.Format
	if flags.changed("stamp-format") {
		s.stampFormat = flags.stampFormat
	}
	if s.stampFormat != "" {
		if _, err := dateutil.ResolveLayout(s.stampFormat); err != nil {
			return nil, err
		}
	}

	timeout := cfg.PDF.Timeout
	if flags.changed("timeout") {
		timeout = flags.timeout
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: timeout %q", config.ErrInvalidValue, timeout)
		}
		s.timeout = d
	}

	return s, nil
}

// serviceOptions converts resolved settings into dashboard options.
func (s *settings) serviceOptions() []dashboard.Option {
	opts := []dashboard.Option{
		dashboard.WithTemplate(s.template),
		dashboard.WithEngine(s.engine),
		dashboard.WithSanitizeSVG(s.sanitizeSVG),
	}
	if s.stampFormat != "" {
		opts = append(opts, dashboard.WithStampFormat(s.stampFormat))
	}
	if s.timeout > 0 {
		opts = append(opts, dashboard.WithTimeout(s.timeout))
	}
	return opts
}

// run executes one conversion: parse the notebook, render the dashboard,
// write it, and optionally export a PDF next to it.
func run(flags *cliFlags, args []string, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintf(stdout, "nbdash %s\n", Version)
		return nil
	}

	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if len(args) == 0 {
		printUsage(stderr)
		return ErrNoInput
	}
	notebookPath := args[0]

	info, err := os.Stat(notebookPath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %q", ErrInputNotFound, notebookPath)
	}

	st, err := resolveSettings(flags, cfg)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Template: %s (requested %q)\n", dashboard.ResolveTemplate(st.template), st.template)
		fmt.Fprintf(stderr, "Engine: %s\n", effectiveEngine(st.engine))
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Parsing notebook: %s\n", notebookPath)
	}
	content, err := dashboard.ParseNotebookFile(notebookPath)
	if err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Found %d plots and %d markdown cells\n", len(content.Plots), len(content.Markdown))
	}

	svc := dashboard.New(st.serviceOptions()...)
	defer func() { _ = svc.Close() }()

	ctx := context.Background()

	if !flags.quiet {
		fmt.Fprintf(stdout, "Generating HTML dashboard with '%s' template...\n", st.template)
	}
	html, err := svc.Generate(ctx, content)
	if err != nil {
		return err
	}
	if err := dashboard.WriteDashboard(html, st.outputPath); err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Dashboard generated: %s\n", st.outputPath)
	}

	if st.pdf {
		pdfPath := replaceExt(st.outputPath, ".pdf")
		pdfCtx := ctx
		if st.timeout > 0 {
			var cancel context.CancelFunc
			pdfCtx, cancel = context.WithTimeout(ctx, st.timeout)
			defer cancel()
		}
		if err := svc.ExportPDF(pdfCtx, html, pdfPath); err != nil {
			return err
		}
		if !flags.quiet {
			fmt.Fprintf(stdout, "PDF exported: %s\n", pdfPath)
		}
	}

	return nil
}

// effectiveEngine names the engine after defaulting.
func effectiveEngine(e dashboard.Engine) dashboard.Engine {
	if e == "" {
		return dashboard.EngineBasic
	}
	return e
}

// replaceExt swaps the path's extension, appending when there is none.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
