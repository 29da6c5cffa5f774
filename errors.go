package dashboard

import "errors"

// Sentinel errors for library operations.
var (
	ErrNotebookParse  = errors.New("notebook parse failed")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrWriteOutput    = errors.New("failed to write output file")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Option validation errors.
	ErrUnknownEngine = errors.New("unknown markdown engine")
)
