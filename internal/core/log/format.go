// File: format.go
// Title: Log Formatters
// Description: JSON and text formatters for log entries. JSON is the
//              default so the log file stays machine-parseable.

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format identifies an output format
type Format int

const (
	// FormatJSON renders one JSON object per line (default)
	FormatJSON Format = iota

	// FormatText renders a human-readable single line
	FormatText
)

// Formatter renders an entry to bytes, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for a format constant
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter renders entries as line-delimited JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// TextFormatter renders entries as a readable single line
type TextFormatter struct{}

// NewTextFormatter creates a text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format("2006-01-02 15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("]")

	if entry.Logger != "" {
		b.WriteString(" (")
		b.WriteString(entry.Logger)
		b.WriteString(")")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Fields[k]))
		}
	}

	if entry.Error != "" {
		b.WriteString(" error=")
		b.WriteString(entry.Error)
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
