// File: error_test.go
// Title: Core Error Tests

package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewAndCode(t *testing.T) {
	err := New("task not found").WithCode(CodeNotFound).WithOperation("api.GetTask")

	if err.Code() != CodeNotFound {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeNotFound)
	}
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want high (auto-set from code)", err.Severity())
	}
	if err.Operation() != "api.GetTask" {
		t.Errorf("Operation() = %v, want api.GetTask", err.Operation())
	}
	if err.Error() != "task not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapPreservesCodeAndDetails(t *testing.T) {
	inner := New("status 502").
		WithCode(CodeBackendError).
		WithServerMessage("ClickUp temporarily unavailable")
	outer := Wrap(inner, "fetch task")

	if outer.Code() != CodeBackendError {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeBackendError)
	}
	if outer.ServerMessage() != "ClickUp temporarily unavailable" {
		t.Errorf("ServerMessage() = %q", outer.ServerMessage())
	}
	if !errors.Is(outer, inner) {
		t.Error("errors.Is should match the wrapped cause")
	}
	if want := "fetch task: status 502"; outer.Error() != want {
		t.Errorf("Error() = %q, want %q", outer.Error(), want)
	}
}

func TestWrapNil(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
}

func TestUserMessageCascade(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"Server message preferred",
			New("PUT /task/t1: status 500").WithServerMessage("Task is locked"),
			"Task is locked",
		},
		{
			"Transport message fallback",
			fmt.Errorf("connection refused"),
			"connection refused",
		},
		{
			"Structured without server message",
			New("request failed").WithCode(CodeTransport),
			"request failed",
		},
		{
			"Nil error uses default",
			nil,
			"Failed to save",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UserMessage(tc.err, "Failed to save"); got != tc.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestWithServerMessageIgnoresBlank(t *testing.T) {
	err := New("boom").WithServerMessage("   ")
	if err.ServerMessage() != "" {
		t.Errorf("blank server message should not be recorded, got %q", err.ServerMessage())
	}
}
