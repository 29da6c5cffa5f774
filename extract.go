package dashboard

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Notebook cell and output kinds relevant to extraction.
const (
	cellTypeMarkdown = "markdown"
	cellTypeCode     = "code"

	outputDisplayData   = "display_data"
	outputExecuteResult = "execute_result"
)

// titlePattern matches the first H1 markdown heading, scanned per line.
var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// textOrList accepts a JSON string or an ordered list of string fragments.
// Notebook files store cell sources and large payloads either way; fragments
// are joined with no separator. A JSON null decodes to the empty string.
type textOrList string

func (t *textOrList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var fragments []string
		if err := json.Unmarshal(data, &fragments); err != nil {
			return err
		}
		*t = textOrList(strings.Join(fragments, ""))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = textOrList(s)
	return nil
}

// notebookFile mirrors the on-disk .ipynb shape. Only the fields needed for
// extraction are declared; everything else is ignored by the decoder.
type notebookFile struct {
	Cells    []notebookCell `json:"cells"`
	Metadata map[string]any `json:"metadata"`
}

type notebookCell struct {
	CellType string           `json:"cell_type"`
	Source   textOrList       `json:"source"`
	Outputs  []notebookOutput `json:"outputs"`
}

type notebookOutput struct {
	OutputType string                     `json:"output_type"`
	Data       map[string]json.RawMessage `json:"data"`
	Metadata   map[string]any             `json:"metadata"`
}

// ParseNotebookFile reads and parses a notebook file.
// Missing or unreadable files are reported as ErrNotebookParse, the same as
// structurally invalid content.
func ParseNotebookFile(path string) (*Content, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the invoking user
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotebookParse, err)
	}
	return ParseNotebook(data)
}

// ParseNotebook parses notebook JSON into a Content record.
// A notebook without a cells field parses as an empty document. The result
// is a pure function of the input bytes.
func ParseNotebook(data []byte) (*Content, error) {
	var nb notebookFile
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotebookParse, err)
	}

	content := &Content{
		Title:    extractTitle(nb.Cells),
		Metadata: nb.Metadata,
	}

	for _, cell := range nb.Cells {
		switch cell.CellType {
		case cellTypeMarkdown:
			if text := string(cell.Source); strings.TrimSpace(text) != "" {
				content.Markdown = append(content.Markdown, text)
			}
		case cellTypeCode:
			content.Plots = append(content.Plots, extractPlots(cell.Outputs)...)
		}
	}

	return content, nil
}

// extractTitle returns the first H1 heading found in any markdown cell,
// or DefaultTitle when no cell carries one.
func extractTitle(cells []notebookCell) string {
	for _, cell := range cells {
		if cell.CellType != cellTypeMarkdown {
			continue
		}
		if m := titlePattern.FindStringSubmatch(string(cell.Source)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return DefaultTitle
}

// extractPlots collects plot images from a code cell's outputs.
// Only display_data and execute_result outputs are considered; within one
// output, MIME types are scanned in the fixed plotMIMETypes order. Each plot
// carries the output's own metadata, not the cell's.
//
// The data map is decoded lazily: entries under other MIME types
// (application/json, text/plain, text/html, ...) may hold objects or numbers
// and are never touched, so their shape cannot fail the parse.
func extractPlots(outputs []notebookOutput) []Plot {
	var plots []Plot
	for _, out := range outputs {
		if out.OutputType != outputDisplayData && out.OutputType != outputExecuteResult {
			continue
		}
		for _, mimeType := range plotMIMETypes {
			raw, ok := out.Data[mimeType]
			if !ok {
				continue
			}
			var payload textOrList
			if err := json.Unmarshal(raw, &payload); err != nil {
				// Image entry with an unexpected shape; skip it.
				continue
			}
			plots = append(plots, Plot{
				MIMEType: mimeType,
				Data:     string(payload),
				Metadata: out.Metadata,
			})
		}
	}
	return plots
}
