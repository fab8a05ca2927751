// File: entry.go
// Title: Log Entry
// Description: The structured entry produced for every log call.

package log

import "time"

// Fields is a map of contextual key-value pairs attached to entries
type Fields map[string]interface{}

// Entry represents a single structured log entry
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"-"`
	LevelName string    `json:"level"`
	Logger    string    `json:"logger,omitempty"`
	Message   string    `json:"message"`
	Fields    Fields    `json:"fields,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// NewEntry creates an entry for the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		LevelName: level.String(),
		Message:   message,
		Fields:    make(Fields),
	}
}
