// Package dashboard converts Jupyter notebooks to static HTML dashboards.
//
// # Quick Start
//
// Parse a notebook, render it, and write the result:
//
//	content, err := dashboard.ParseNotebookFile("analysis.ipynb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := dashboard.New(dashboard.WithTemplate("grid"))
//	html, err := svc.Generate(ctx, content)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = dashboard.WriteDashboard(html, "dashboard.html")
//
// # Pipeline
//
// The conversion process follows these stages:
//
//  1. Notebook extraction (title, markdown cells, plot outputs)
//  2. Markdown to HTML conversion (shallow built-in transform, or Goldmark
//     via WithEngine(EngineRich))
//  3. Plot embedding (base64 data URIs for raster images, inline SVG)
//  4. Template layout (default, minimal, or grid) with an embedded stylesheet
//
// The output is a single self-contained HTML5 document: no external scripts,
// stylesheets, or image references.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := dashboard.New(
//	    dashboard.WithTemplate("minimal"),
//	    dashboard.WithEngine(dashboard.EngineRich),
//	    dashboard.WithSanitizeSVG(true),
//	)
//
// Unknown template names are not an error; they resolve to the default
// template.
//
// # PDF Export
//
// ExportPDF renders the dashboard in headless Chrome (go-rod) and writes a
// PDF. The browser is downloaded automatically on first use; set
// ROD_BROWSER_BIN to use a pre-installed Chrome. Sandboxing is disabled
// automatically when CI=true or ROD_BROWSER_BIN is set.
package dashboard
