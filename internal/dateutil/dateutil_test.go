package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:     "default stamp format",
			format:   "YYYY-MM-DD HH:mm:ss",
			expected: "2006-01-02 15:04:05",
		},
		{
			name:     "date only",
			format:   "YYYY-MM-DD",
			expected: "2006-01-02",
		},
		{
			name:     "european slashes",
			format:   "DD/MM/YYYY",
			expected: "02/01/2006",
		},
		{
			name:     "long month",
			format:   "MMMM D, YYYY",
			expected: "January 2, 2006",
		},
		{
			name:     "two digit year",
			format:   "YY-MM",
			expected: "06-01",
		},
		{
			name:     "bracket escape",
			format:   "[Generated] YYYY",
			expected: "Generated 2006",
		},
		{
			name:     "bracketed T separator",
			format:   "YYYY-MM-DD[T]HH:mm:ss",
			expected: "2006-01-02T15:04:05",
		},
		{
			name:     "literal characters preserved",
			format:   "YYYY.MM.DD!",
			expected: "2006.01.02!",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.format, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.format, got, tt.expected)
			}
		})
	}
}

func TestParseFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
	}{
		{name: "empty", format: ""},
		{name: "too long", format: strings.Repeat("Y", MaxFormatLength+1)},
		{name: "unclosed bracket", format: "[Generated YYYY"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseFormat(tt.format); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrInvalidFormat", tt.format, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "default format", format: DefaultFormat, expected: "2024-03-01 12:30:45"},
		{name: "iso preset", format: "iso", expected: "2024-03-01T12:30:45"},
		{name: "preset case insensitive", format: "ISO", expected: "2024-03-01T12:30:45"},
		{name: "date preset", format: "date", expected: "2024-03-01"},
		{name: "compact preset", format: "compact", expected: "20240301-123045"},
		{name: "custom tokens", format: "D/M/YY", expected: "1/3/24"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(fixed, tt.format)
			if err != nil {
				t.Fatalf("Format(%q) error = %v", tt.format, err)
			}
			if got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.expected)
			}
		})
	}
}

func TestResolveLayout(t *testing.T) {
	t.Parallel()

	layout, err := ResolveLayout("long")
	if err != nil {
		t.Fatalf("ResolveLayout(long) error = %v", err)
	}
	if layout != "January 2, 2006 15:04" {
		t.Errorf("ResolveLayout(long) = %q", layout)
	}

	if _, err := ResolveLayout(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ResolveLayout(\"\") error = %v, want ErrInvalidFormat", err)
	}
}
