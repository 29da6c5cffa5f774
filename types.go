package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/nanahubert30/Data-Analyst/internal/dateutil"
)

// DefaultTitle is used when no markdown cell contains an H1 heading.
const DefaultTitle = "Dashboard"

// Supported plot MIME types.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMESVG  = "image/svg+xml"
)

// plotMIMETypes is the fixed scan order applied to each output's data map.
// A single output may contribute one plot per matching MIME type.
var plotMIMETypes = [...]string{MIMEPNG, MIMEJPEG, MIMESVG}

// Plot is one image extracted from a code cell output.
type Plot struct {
	MIMEType string
	Data     string         // base64 text for raster types, raw markup for SVG
	Metadata map[string]any // output-level metadata, passed through unmodified
}

// Content is the normalized extraction result consumed by rendering.
// Markdown entries are never blank; ordering follows document cell order.
type Content struct {
	Title    string
	Markdown []string
	Plots    []Plot
	Metadata map[string]any // notebook metadata, passed through unmodified
}

// Template identifies a dashboard layout.
type Template string

// Built-in templates.
const (
	TemplateDefault Template = "default"
	TemplateMinimal Template = "minimal"
	TemplateGrid    Template = "grid"
)

// ResolveTemplate maps a template name to a built-in Template.
// Unknown names resolve to TemplateDefault; selection never fails.
func ResolveTemplate(name string) Template {
	switch Template(strings.ToLower(name)) {
	case TemplateMinimal:
		return TemplateMinimal
	case TemplateGrid:
		return TemplateGrid
	default:
		return TemplateDefault
	}
}

// Engine selects the markdown-to-HTML converter.
type Engine string

// Available markdown engines.
const (
	EngineBasic Engine = "basic" // shallow built-in transform (default)
	EngineRich  Engine = "rich"  // Goldmark with GFM and syntax highlighting
)

// Validate checks that the engine name is known. The empty string is
// accepted and means EngineBasic.
func (e Engine) Validate() error {
	switch e {
	case "", EngineBasic, EngineRich:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownEngine, e)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	template    Template
	engine      Engine
	sanitizeSVG bool
	stampLayout string // resolved Go time layout for the generated-on stamp
	timeout     time.Duration
}

// defaultTimeout bounds PDF export when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTemplate selects the dashboard layout by name.
// Unknown names silently resolve to the default template.
func WithTemplate(name string) Option {
	return func(s *Service) {
		s.cfg.template = ResolveTemplate(name)
	}
}

// WithEngine selects the markdown engine.
// Panics on an unknown engine (programmer error; user-facing callers
// validate engine names before constructing the service).
func WithEngine(e Engine) Option {
	if err := e.Validate(); err != nil {
		panic("dashboard: " + err.Error())
	}
	return func(s *Service) {
		if e != "" {
			s.cfg.engine = e
		}
	}
}

// WithSanitizeSVG enables bluemonday sanitizing of SVG payloads before
// they are embedded. Off by default: payloads pass through verbatim.
func WithSanitizeSVG(enabled bool) Option {
	return func(s *Service) {
		s.cfg.sanitizeSVG = enabled
	}
}

// WithStampFormat sets the "Generated on" timestamp format using dateutil
// tokens (YYYY, MM, DD, HH, mm, ss) or a preset name. Panics on an invalid
// format (programmer error, validated earlier for user input).
func WithStampFormat(format string) Option {
	layout, err := dateutil.ResolveLayout(format)
	if err != nil {
		panic("dashboard: " + err.Error())
	}
	return func(s *Service) {
		s.cfg.stampLayout = layout
	}
}

// WithTimeout sets the PDF export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("dashboard: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithClock overrides the wall clock used for the generated-on stamp.
// Intended for tests that need deterministic output.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}
