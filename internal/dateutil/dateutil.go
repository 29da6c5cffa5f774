// Package dateutil converts user-friendly timestamp format strings to Go
// time layouts for the dashboard's generation stamp.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat indicates an invalid timestamp format string.
var ErrInvalidFormat = errors.New("invalid timestamp format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// DefaultFormat matches the classic "Generated on" stamp.
const DefaultFormat = "YYYY-MM-DD HH:mm:ss"

// formatTokens maps friendly tokens to Go time layout components.
// Ordered by length descending for greedy matching.
var formatTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common stamp formats.
var Presets = map[string]string{
	"iso":     "YYYY-MM-DD[T]HH:mm:ss",
	"date":    "YYYY-MM-DD",
	"long":    "MMMM D, YYYY HH:mm",
	"compact": "YYYYMMDD-HHmmss",
}

// ParseFormat converts a friendly format string to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Bracketed text is copied literally: "[Generated] YYYY" keeps "Generated".
// Non-token characters outside brackets pass through unchanged.
// Returns ErrInvalidFormat if the format is empty, too long, or has an
// unclosed bracket.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidFormat, MaxFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 8)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			layout.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range formatTokens {
			if strings.HasPrefix(format[i:], t.token) {
				layout.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			layout.WriteByte(format[i])
			i++
		}
	}

	return layout.String(), nil
}

// ResolveLayout converts a friendly format string or preset name to a Go
// time layout. Preset lookup is case-insensitive.
func ResolveLayout(format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	return ParseFormat(format)
}

// Format renders t using a friendly format string or preset name.
func Format(t time.Time, format string) (string, error) {
	layout, err := ResolveLayout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
