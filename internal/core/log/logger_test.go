// File: logger_test.go
// Title: Core Logger Tests

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	fterror "fieldtask/internal/core/error"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("visible warning")
	logger.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output should not contain filtered messages: %s", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "visible error") {
		t.Errorf("output missing expected messages: %s", out)
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf, Name: "taskview"})

	logger.Info("task loaded", Fields{"task_id": "t1"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%s)", err, buf.String())
	}
	if entry["message"] != "task loaded" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["logger"] != "taskview" {
		t.Errorf("logger = %v", entry["logger"])
	}
	fields, _ := entry["fields"].(map[string]interface{})
	if fields["task_id"] != "t1" {
		t.Errorf("fields = %v", entry["fields"])
	}
}

func TestLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	logger.Warn("slow response", Fields{"duration_ms": 900})

	out := buf.String()
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "slow response") {
		t.Errorf("unexpected text output: %s", out)
	}
	if !strings.Contains(out, "duration_ms=900") {
		t.Errorf("fields missing from text output: %s", out)
	}
}

func TestLoggerWithFieldIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelDebug, Output: &buf})
	scoped := base.WithField("task_id", "t1")

	base.Info("base message")
	if strings.Contains(buf.String(), "task_id") {
		t.Errorf("base logger must not inherit scoped field: %s", buf.String())
	}

	buf.Reset()
	scoped.Info("scoped message")
	if !strings.Contains(buf.String(), "task_id") {
		t.Errorf("scoped logger missing field: %s", buf.String())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Output: &buf})

	logger.LogError(fterror.New("bad arrival value").WithCode(fterror.CodeInvalidInput))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	// Low severity errors are logged at info level.
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	fields, _ := entry["fields"].(map[string]interface{})
	if fields["error_code"] != "INVALID_INPUT" {
		t.Errorf("error_code field = %v", fields["error_code"])
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}
	for _, tc := range testCases {
		if got := ParseLevel(tc.input); got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}
