package dashboard

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled rewrite patterns, applied in the order declared in
// markdownToHTML. Headers are line-anchored; emphasis and code spans use
// leftmost non-overlapping matching, not a parse tree.
var (
	h3Pattern = regexp.MustCompile(`(?m)^### (.+)$`)
	h2Pattern = regexp.MustCompile(`(?m)^## (.+)$`)
	h1Pattern = regexp.MustCompile(`(?m)^# (.+)$`)

	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)

	fencedCodePattern = regexp.MustCompile("(?s)```(.+?)```")
	inlineCodePattern = regexp.MustCompile("`(.+?)`")
)

// markdownConverter abstracts markdown-to-HTML conversion so the rich
// Goldmark engine can be swapped in without touching the templates.
type markdownConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// basicConverter is the default converter: a fixed sequence of textual
// rewrites covering headers, emphasis, code spans, and paragraph breaks.
// It is deliberately shallow and does not attempt full markdown semantics.
type basicConverter struct{}

func (basicConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return markdownToHTML(content), nil
}

// markdownToHTML rewrites basic markdown constructs into HTML.
// The rewrites run in a fixed order: h3/h2/h1 headers, bold, italic, fenced
// code, inline code, then blank-line paragraph breaks with an outer <p>
// wrap. The transform is not idempotent and not nested-markup-aware.
func markdownToHTML(md string) string {
	html := h3Pattern.ReplaceAllString(md, "<h3>$1</h3>")
	html = h2Pattern.ReplaceAllString(html, "<h2>$1</h2>")
	html = h1Pattern.ReplaceAllString(html, "<h1>$1</h1>")

	html = boldPattern.ReplaceAllString(html, "<strong>$1</strong>")
	html = italicPattern.ReplaceAllString(html, "<em>$1</em>")

	html = fencedCodePattern.ReplaceAllString(html, "<pre><code>$1</code></pre>")
	html = inlineCodePattern.ReplaceAllString(html, "<code>$1</code>")

	html = strings.ReplaceAll(html, "\n\n", "</p><p>")
	return "<p>" + html + "</p>"
}
