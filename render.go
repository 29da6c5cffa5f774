package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/nanahubert30/Data-Analyst/internal/assets"
)

// section is one visually delimited block of the default template: at most
// one markdown entry paired with at most one plot.
type section struct {
	markdown    string
	hasMarkdown bool
	plots       []Plot
}

// pairSections interleaves markdown entries and plots by position.
// Each step takes the current markdown entry (while any remain) and drains
// exactly one plot (while any remain); the markdown index advances only when
// a markdown entry was attached, so leftover plots each get a section of
// their own. This is positional co-location, not a semantic grouping.
func pairSections(markdown []string, plots []Plot) []section {
	var sections []section
	mdIdx, plotIdx := 0, 0

	for mdIdx < len(markdown) || plotIdx < len(plots) {
		sec := section{}

		if mdIdx < len(markdown) {
			sec.markdown = markdown[mdIdx]
			sec.hasMarkdown = true
		}
		if plotIdx < len(plots) {
			sec.plots = append(sec.plots, plots[plotIdx])
			plotIdx++
		}

		sections = append(sections, sec)
		if sec.hasMarkdown {
			mdIdx++
		}
	}

	return sections
}

// renderDashboard produces the complete HTML document for the configured
// template. Markdown blocks are converted up front so section pairing works
// on final fragments.
func (s *Service) renderDashboard(ctx context.Context, content *Content) (string, error) {
	css, err := assets.LoadStyle(string(s.cfg.template))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	blocks := make([]string, len(content.Markdown))
	for i, md := range content.Markdown {
		block, err := s.markdown.ToHTML(ctx, md)
		if err != nil {
			return "", err
		}
		blocks[i] = block
	}

	switch s.cfg.template {
	case TemplateMinimal:
		return s.renderMinimal(content, blocks, css), nil
	case TemplateGrid:
		return s.renderGrid(content, blocks, css), nil
	default:
		return s.renderDefault(content, blocks, css), nil
	}
}

// htmlHead returns the shared document preamble up to and including the
// embedded stylesheet and the opening <body> tag.
func htmlHead(title, css string) []string {
	return []string{
		"<!DOCTYPE html>",
		"<html lang='en'>",
		"<head>",
		"    <meta charset='UTF-8'>",
		"    <meta name='viewport' content='width=device-width, initial-scale=1.0'>",
		"    <title>" + title + "</title>",
		"    <style>",
		css,
		"    </style>",
		"</head>",
		"<body>",
	}
}

// renderDefault lays out paired markdown/plot sections under a title heading
// and a generation timestamp.
func (s *Service) renderDefault(content *Content, blocks []string, css string) string {
	stamp := s.now().Format(s.cfg.stampLayout)

	parts := htmlHead(content.Title, css)
	parts = append(parts,
		"    <div class='container'>",
		"        <h1 class='main-title'>"+content.Title+"</h1>",
		"        <p class='generated-info'>Generated on "+stamp+"</p>",
	)

	for i, sec := range pairSections(blocks, content.Plots) {
		parts = append(parts, fmt.Sprintf("        <div class='section' id='section-%d'>", i))

		if sec.hasMarkdown {
			parts = append(parts,
				"            <div class='markdown-content'>",
				"                "+sec.markdown,
				"            </div>",
			)
		}

		if len(sec.plots) > 0 {
			parts = append(parts, "            <div class='plots-container'>")
			for _, p := range sec.plots {
				parts = append(parts, plotHTML(p, s.cfg.sanitizeSVG))
			}
			parts = append(parts, "            </div>")
		}

		parts = append(parts, "        </div>")
	}

	parts = append(parts,
		"    </div>",
		"</body>",
		"</html>",
	)
	return strings.Join(parts, "\n")
}

// renderMinimal lays out all markdown blocks in order, then all plots in
// order, under a bare title heading. No pairing.
func (s *Service) renderMinimal(content *Content, blocks []string, css string) string {
	parts := htmlHead(content.Title, css)
	parts = append(parts, "    <h1>"+content.Title+"</h1>")

	for _, block := range blocks {
		parts = append(parts, "    <div class='content'>"+block+"</div>")
	}
	for _, p := range content.Plots {
		parts = append(parts, "    <div class='plot'>"+plotHTML(p, s.cfg.sanitizeSVG)+"</div>")
	}

	parts = append(parts, "</body>", "</html>")
	return strings.Join(parts, "\n")
}

// renderGrid lays out every markdown block and plot as one tile in a
// responsive grid, preceded by a page-spanning header tile.
func (s *Service) renderGrid(content *Content, blocks []string, css string) string {
	parts := htmlHead(content.Title, css)
	parts = append(parts,
		"    <div class='grid-container'>",
		"        <h1 class='header'>"+content.Title+"</h1>",
	)

	for _, block := range blocks {
		parts = append(parts, "        <div class='grid-item text-item'>"+block+"</div>")
	}
	for _, p := range content.Plots {
		parts = append(parts, "        <div class='grid-item plot-item'>"+plotHTML(p, s.cfg.sanitizeSVG)+"</div>")
	}

	parts = append(parts,
		"    </div>",
		"</body>",
		"</html>",
	)
	return strings.Join(parts, "\n")
}
