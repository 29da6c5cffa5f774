package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbdash <notebook.ipynb> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a static HTML dashboard from a Jupyter notebook.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  notebook    Path to the notebook file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: dashboard.html)")
	fmt.Fprintln(w, "  -t, --template <name>     Template style: default, minimal, grid")
	fmt.Fprintln(w, "                            Unknown names fall back to default")
	fmt.Fprintln(w, "  -c, --config <path>       YAML config file")
	fmt.Fprintln(w, "      --engine <name>       Markdown engine: basic (shallow, default)")
	fmt.Fprintln(w, "                            or rich (full markdown with highlighting)")
	fmt.Fprintln(w, "      --sanitize-svg        Strip scripts from embedded SVG plots")
	fmt.Fprintln(w, "      --stamp-format <fmt>  Generated-on timestamp format")
	fmt.Fprintln(w, "                            Tokens: YYYY, MM, DD, HH, mm, ss; [text] escapes")
	fmt.Fprintln(w, "                            Presets: iso, date, long, compact")
	fmt.Fprintln(w, "      --pdf                 Also export the dashboard as PDF")
	fmt.Fprintln(w, "      --timeout <dur>       PDF export timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolution details")
	fmt.Fprintln(w, "      --version             Show version information")
}
