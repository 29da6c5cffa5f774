package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// defaultOutputPath is used when neither the flag nor the config sets one.
const defaultOutputPath = "dashboard.html"

// cliFlags holds all flags for nbdash.
type cliFlags struct {
	fs *flag.FlagSet

	output      string
	template    string
	configPath  string
	engine      string
	stampFormat string
	timeout     string
	sanitizeSVG bool
	pdf         bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("nbdash", flag.ContinueOnError)
	f := &cliFlags{fs: fs}

	fs.StringVarP(&f.output, "output", "o", defaultOutputPath, "output HTML file path")
	fs.StringVarP(&f.template, "template", "t", "default", "template style: default, minimal, grid")
	fs.StringVarP(&f.configPath, "config", "c", "", "config file path")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: basic, rich")
	fs.StringVar(&f.stampFormat, "stamp-format", "", "generated-on timestamp format (tokens or preset)")
	fs.StringVar(&f.timeout, "timeout", "", "PDF export timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.sanitizeSVG, "sanitize-svg", false, "sanitize SVG plot payloads before embedding")
	fs.BoolVar(&f.pdf, "pdf", false, "also export the dashboard as PDF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolution details")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// changed reports whether the named flag was explicitly set.
// Explicit flags win over config file values.
func (f *cliFlags) changed(name string) bool {
	return f.fs.Changed(name)
}
