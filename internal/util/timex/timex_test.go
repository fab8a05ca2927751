// File: timex_test.go
// Title: Task Time Utilities Tests

package timex

import (
	"testing"
	"time"
)

func TestISOToDatetimeLocal(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		empty bool
	}{
		{"RFC3339 UTC", "2025-03-14T09:30:00Z", false},
		{"RFC3339 with offset", "2025-03-14T09:30:00+08:00", false},
		{"Empty", "", true},
		{"Whitespace", "   ", true},
		{"Garbage", "not a date", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ISOToDatetimeLocal(tc.input)
			if tc.empty {
				if got != "" {
					t.Errorf("ISOToDatetimeLocal(%q) = %q, want empty", tc.input, got)
				}
				return
			}
			if _, err := time.ParseInLocation(DatetimeLocalLayout, got, time.Local); err != nil {
				t.Errorf("ISOToDatetimeLocal(%q) = %q, not a valid editor value: %v", tc.input, got, err)
			}
		})
	}
}

func TestDatetimeLocalRoundTrip(t *testing.T) {
	// Converting ISO -> editor value -> ISO must preserve the local
	// wall-clock time (to minute precision).
	inputs := []string{
		"2025-03-14T09:30:00Z",
		"2025-12-31T23:59:00Z",
		"2024-02-29T00:00:00+05:30",
	}

	for _, iso := range inputs {
		t.Run(iso, func(t *testing.T) {
			local := ISOToDatetimeLocal(iso)
			back := DatetimeLocalToISO(local)
			if back == "" {
				t.Fatalf("round trip of %q produced empty ISO", iso)
			}

			want, err := ParseISO(iso)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ParseISO(back)
			if err != nil {
				t.Fatal(err)
			}

			wantLocal := want.In(time.Local).Truncate(time.Minute)
			gotLocal := got.In(time.Local).Truncate(time.Minute)
			if !gotLocal.Equal(wantLocal) {
				t.Errorf("round trip wall clock = %v, want %v", gotLocal, wantLocal)
			}
		})
	}
}

func TestDatetimeLocalToISO_Empty(t *testing.T) {
	if got := DatetimeLocalToISO(""); got != "" {
		t.Errorf("DatetimeLocalToISO(\"\") = %q, want empty", got)
	}
	if got := DatetimeLocalToISO("junk"); got != "" {
		t.Errorf("DatetimeLocalToISO(junk) = %q, want empty", got)
	}
}

func TestFormatDisplay(t *testing.T) {
	if got := FormatDisplay(""); got != EmptyDisplay {
		t.Errorf("FormatDisplay(\"\") = %q, want %q", got, EmptyDisplay)
	}
	if got := FormatDisplay("garbage"); got != EmptyDisplay {
		t.Errorf("FormatDisplay(garbage) = %q, want %q", got, EmptyDisplay)
	}
	if got := FormatDisplay("2025-03-14T09:30:00Z"); got == EmptyDisplay || got == "" {
		t.Errorf("FormatDisplay(valid) = %q, want formatted date", got)
	}
}

func TestMSTimestampToTime(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
		wantMS  int64
	}{
		{"Valid", "1741944600000", false, 1741944600000},
		{"Zero", "0", false, 0},
		{"Junk", "soon", true, 0},
		{"Empty", "", true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MSTimestampToTime(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("MSTimestampToTime(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("MSTimestampToTime(%q) unexpected error: %v", tc.input, err)
			}
			if got.UnixMilli() != tc.wantMS {
				t.Errorf("MSTimestampToTime(%q) = %d ms, want %d", tc.input, got.UnixMilli(), tc.wantMS)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	start, end, err := Window("1741944600000", 2)
	if err != nil {
		t.Fatalf("Window() unexpected error: %v", err)
	}
	if got := end.Sub(start); got != 2*time.Hour {
		t.Errorf("Window() span = %v, want 2h", got)
	}

	// Negative buffers clamp to zero rather than producing an inverted window.
	start, end, err = Window("1741944600000", -3)
	if err != nil {
		t.Fatalf("Window() unexpected error: %v", err)
	}
	if !end.Equal(start) {
		t.Errorf("Window() with negative buffer: end = %v, want %v", end, start)
	}

	if _, _, err := Window("junk", 1); err == nil {
		t.Error("Window() with junk start expected error")
	}
}
