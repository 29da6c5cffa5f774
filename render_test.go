package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
)

// fixedClock returns a deterministic clock for byte-identical renders.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	}
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing rendered HTML: %v", err)
	}
	return doc
}

func TestPairSections(t *testing.T) {
	t.Parallel()

	p1 := Plot{MIMEType: MIMEPNG, Data: "P1"}
	p2 := Plot{MIMEType: MIMEPNG, Data: "P2"}
	p3 := Plot{MIMEType: MIMEPNG, Data: "P3"}

	tests := []struct {
		name     string
		markdown []string
		plots    []Plot
		expected []section
	}{
		{
			name:     "plots outrun markdown",
			markdown: []string{"A", "B"},
			plots:    []Plot{p1, p2, p3},
			expected: []section{
				{markdown: "A", hasMarkdown: true, plots: []Plot{p1}},
				{markdown: "B", hasMarkdown: true, plots: []Plot{p2}},
				{plots: []Plot{p3}},
			},
		},
		{
			name:     "markdown outruns plots",
			markdown: []string{"A", "B", "C"},
			plots:    []Plot{p1},
			expected: []section{
				{markdown: "A", hasMarkdown: true, plots: []Plot{p1}},
				{markdown: "B", hasMarkdown: true},
				{markdown: "C", hasMarkdown: true},
			},
		},
		{
			name:  "plots only",
			plots: []Plot{p1, p2},
			expected: []section{
				{plots: []Plot{p1}},
				{plots: []Plot{p2}},
			},
		},
		{
			name:     "markdown only",
			markdown: []string{"A"},
			expected: []section{
				{markdown: "A", hasMarkdown: true},
			},
		},
		{
			name: "both empty",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pairSections(tt.markdown, tt.plots)
			if diff := cmp.Diff(tt.expected, got, cmp.AllowUnexported(section{})); diff != "" {
				t.Errorf("pairSections() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderEmptyContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		template    string
		contentsSel string
		titleSel    string
	}{
		{name: "default", template: "default", contentsSel: "div.section", titleSel: "h1.main-title"},
		{name: "minimal", template: "minimal", contentsSel: "div.content, div.plot", titleSel: "h1"},
		{name: "grid", template: "grid", contentsSel: "div.grid-item", titleSel: "h1.header"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := New(WithTemplate(tt.template), WithClock(fixedClock()))
			html, err := svc.Generate(context.Background(), &Content{Title: "Empty Report"})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			doc := parseHTML(t, html)
			if got := doc.Find(tt.contentsSel).Length(); got != 0 {
				t.Errorf("%d content nodes rendered for empty document, want 0", got)
			}
			if got := doc.Find(tt.titleSel).First().Text(); got != "Empty Report" {
				t.Errorf("title heading = %q, want %q", got, "Empty Report")
			}
		})
	}
}

func TestRenderDefaultSections(t *testing.T) {
	t.Parallel()

	content := &Content{
		Title:    "Report",
		Markdown: []string{"A", "B"},
		Plots: []Plot{
			{MIMEType: MIMEPNG, Data: "P1"},
			{MIMEType: MIMEPNG, Data: "P2"},
			{MIMEType: MIMEPNG, Data: "P3"},
		},
	}

	svc := New(WithClock(fixedClock()))
	html, err := svc.Generate(context.Background(), content)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	doc := parseHTML(t, html)

	sections := doc.Find("div.section")
	if sections.Length() != 3 {
		t.Fatalf("got %d sections, want 3", sections.Length())
	}

	// First two sections pair markdown with one plot each; the third drains
	// the leftover plot with no markdown.
	sections.Each(func(i int, sel *goquery.Selection) {
		mdCount := sel.Find("div.markdown-content").Length()
		plotCount := sel.Find("img.plot-image").Length()
		wantMD := 1
		if i == 2 {
			wantMD = 0
		}
		if mdCount != wantMD {
			t.Errorf("section %d: %d markdown blocks, want %d", i, mdCount, wantMD)
		}
		if plotCount != 1 {
			t.Errorf("section %d: %d plots, want 1", i, plotCount)
		}
	})

	if !strings.Contains(html, "Generated on 2024-03-01 12:30:45") {
		t.Errorf("generation stamp missing:\n%s", html)
	}
}

func TestRenderMinimalOrdering(t *testing.T) {
	t.Parallel()

	content := &Content{
		Title:    "Report",
		Markdown: []string{"first", "second"},
		Plots: []Plot{
			{MIMEType: MIMEPNG, Data: "P1"},
			{MIMEType: MIMESVG, Data: "<svg/>"},
		},
	}

	svc := New(WithTemplate("minimal"))
	html, err := svc.Generate(context.Background(), content)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	doc := parseHTML(t, html)
	if got := doc.Find("div.content").Length(); got != 2 {
		t.Errorf("%d markdown blocks, want 2", got)
	}
	if got := doc.Find("div.plot").Length(); got != 2 {
		t.Errorf("%d plot blocks, want 2", got)
	}

	// All markdown precedes all plots: no pairing in the minimal layout.
	lastMD := strings.LastIndex(html, "div class='content'")
	firstPlot := strings.Index(html, "div class='plot'")
	if lastMD > firstPlot {
		t.Errorf("plots interleaved with markdown in minimal template")
	}
}

func TestRenderGridTiles(t *testing.T) {
	t.Parallel()

	content := &Content{
		Title:    "Grid Report",
		Markdown: []string{"alpha", "beta"},
		Plots:    []Plot{{MIMEType: MIMEPNG, Data: "P1"}},
	}

	svc := New(WithTemplate("grid"))
	html, err := svc.Generate(context.Background(), content)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	doc := parseHTML(t, html)
	if got := doc.Find("div.grid-item.text-item").Length(); got != 2 {
		t.Errorf("%d text tiles, want 2", got)
	}
	if got := doc.Find("div.grid-item.plot-item").Length(); got != 1 {
		t.Errorf("%d plot tiles, want 1", got)
	}
	if got := doc.Find("h1.header").Text(); got != "Grid Report" {
		t.Errorf("header = %q, want %q", got, "Grid Report")
	}
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	t.Parallel()

	content := &Content{
		Title:    "Report",
		Markdown: []string{"text"},
		Plots:    []Plot{{MIMEType: MIMEPNG, Data: "AAAA"}},
	}

	clock := fixedClock()
	fancy := New(WithTemplate("fancy"), WithClock(clock))
	standard := New(WithTemplate("default"), WithClock(clock))

	fancyHTML, err := fancy.Generate(context.Background(), content)
	if err != nil {
		t.Fatalf("Generate(fancy) error = %v", err)
	}
	defaultHTML, err := standard.Generate(context.Background(), content)
	if err != nil {
		t.Fatalf("Generate(default) error = %v", err)
	}

	if fancyHTML != defaultHTML {
		t.Error("unknown template output differs from default template output")
	}
}

func TestRenderRoundTripSmoke(t *testing.T) {
	t.Parallel()

	notebook := `{"cells":[
		{"cell_type":"markdown","source":"# T\n\nHello **world**"},
		{"cell_type":"code","source":"","outputs":[
			{"output_type":"display_data","data":{"image/png":"AAAA"},"metadata":{}}
		]}
	]}`

	content, err := ParseNotebook([]byte(notebook))
	if err != nil {
		t.Fatalf("ParseNotebook() error = %v", err)
	}

	svc := New(WithClock(fixedClock()))
	html, err := svc.Generate(context.Background(), content)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, fragment := range []string{
		"<h1 class='main-title'>T</h1>",
		"<strong>world</strong>",
		`<img src="data:image/png;base64,AAAA"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("rendered HTML missing %q", fragment)
		}
	}
}

func TestResolveTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Template
	}{
		{name: "default", input: "default", expected: TemplateDefault},
		{name: "minimal", input: "minimal", expected: TemplateMinimal},
		{name: "grid", input: "grid", expected: TemplateGrid},
		{name: "case insensitive", input: "GRID", expected: TemplateGrid},
		{name: "unknown falls back", input: "fancy", expected: TemplateDefault},
		{name: "empty falls back", input: "", expected: TemplateDefault},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveTemplate(tt.input); got != tt.expected {
				t.Errorf("ResolveTemplate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
