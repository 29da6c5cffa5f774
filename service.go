package dashboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNilContent indicates Generate was called without a content record.
var ErrNilContent = errors.New("content cannot be nil")

// defaultStampLayout is the resolved layout for "YYYY-MM-DD HH:mm:ss".
const defaultStampLayout = "2006-01-02 15:04:05"

// Service renders content records into dashboard documents.
type Service struct {
	cfg      serviceConfig
	markdown markdownConverter
	pdf      pdfRenderer
	now      func() time.Time
}

// New creates a Service with default configuration: default template, basic
// markdown engine, verbatim SVG passthrough.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			template:    TemplateDefault,
			engine:      EngineBasic,
			stampLayout: defaultStampLayout,
			timeout:     defaultTimeout,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Pick the markdown converter unless one was injected (e.g., by tests)
	if s.markdown == nil {
		if s.cfg.engine == EngineRich {
			s.markdown = newGoldmarkConverter()
		} else {
			s.markdown = basicConverter{}
		}
	}

	return s
}

// Generate renders the content record to a complete HTML document.
// Rendering with a fixed clock is deterministic: the same content and
// configuration always produce identical bytes.
func (s *Service) Generate(ctx context.Context, content *Content) (string, error) {
	if content == nil {
		return "", ErrNilContent
	}
	return s.renderDashboard(ctx, content)
}

// GenerateFile renders the content record and writes it to outputPath.
func (s *Service) GenerateFile(ctx context.Context, content *Content, outputPath string) error {
	html, err := s.Generate(ctx, content)
	if err != nil {
		return err
	}
	return WriteDashboard(html, outputPath)
}

// Close releases resources held by the optional PDF exporter.
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// WriteDashboard writes the HTML document to path as UTF-8 text,
// overwriting any existing file. There is no atomic write-then-rename; a
// failure mid-write may leave a partial file.
func WriteDashboard(html, path string) error {
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil { // #nosec G306 -- output file is not sensitive
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
