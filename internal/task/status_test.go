// File: status_test.go
// Title: Status Vocabulary Tests

package task

import "testing"

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected CompletionStatus
		clickup  string
	}{
		{"Pending", "pending", StatusPending, "open"},
		{"In progress", "in_progress", StatusInProgress, "in progress"},
		{"Completed", "completed", StatusCompleted, "complete"},
		{"Empty defaults to pending", "", StatusPending, "open"},
		{"Unknown defaults to pending", "cancelled", StatusPending, "open"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StatusFor(tc.input)
			if got.UIValue != tc.expected {
				t.Errorf("StatusFor(%q).UIValue = %v, want %v", tc.input, got.UIValue, tc.expected)
			}
			if got.ClickUpValue != tc.clickup {
				t.Errorf("StatusFor(%q).ClickUpValue = %q, want %q", tc.input, got.ClickUpValue, tc.clickup)
			}
		})
	}
}

func TestStatusForIsIdempotent(t *testing.T) {
	for _, input := range []string{"pending", "in_progress", "completed", "", "junk"} {
		first := StatusFor(input)
		second := StatusFor(input)
		if first != second {
			t.Errorf("StatusFor(%q) not idempotent: %v vs %v", input, first, second)
		}
	}
}

func TestStatusOptionsOrder(t *testing.T) {
	options := StatusOptions()
	if len(options) != 3 {
		t.Fatalf("len(StatusOptions()) = %d, want 3", len(options))
	}
	want := []CompletionStatus{StatusPending, StatusInProgress, StatusCompleted}
	for i, status := range want {
		if options[i].UIValue != status {
			t.Errorf("options[%d] = %v, want %v", i, options[i].UIValue, status)
		}
	}

	// Returned slice is a copy; mutating it must not corrupt the vocabulary.
	options[0].ClickUpValue = "mutated"
	if StatusFor("pending").ClickUpValue != "open" {
		t.Error("vocabulary mutated through StatusOptions() result")
	}
}
