package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty", "", true},
		{"Spaces", "   ", true},
		{"Tabs and newlines", "\t\n ", true},
		{"Text", "hello", false},
		{"Text with spaces", "  hello  ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBlank(tc.input); got != tc.expected {
				t.Errorf("IsBlank(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"Shorter than max", "abc", 10, "abc"},
		{"Exact length", "abcde", 5, "abcde"},
		{"Truncated", "abcdefgh", 6, "abc..."},
		{"Multibyte", "维护任务需要处理", 5, "维护..."},
		{"Zero max", "abc", 0, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.input, tc.maxLen, "..."); got != tc.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "server message", "fallback"); got != "server message" {
		t.Errorf("FirstNonBlank = %q, want %q", got, "server message")
	}
	if got := FirstNonBlank("", "   "); got != "" {
		t.Errorf("FirstNonBlank with all blank = %q, want empty", got)
	}
}
