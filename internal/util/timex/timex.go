// File: timex.go
// Title: Task Time Utilities
// Description: Conversions between the backend's time encodings (RFC3339
//              strings, string-encoded epoch milliseconds) and the local
//              wall-clock representation used by the arrival editor, plus
//              display formatting for the task detail view.

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DatetimeLocalLayout is the wall-clock layout used by the arrival editor,
// matching the HTML datetime-local input format.
const DatetimeLocalLayout = "2006-01-02T15:04"

// displayLayout renders "Mon, Jan 2, 3:04 PM".
const displayLayout = "Mon, Jan 2, 3:04 PM"

// EmptyDisplay is shown in place of an unset timestamp.
const EmptyDisplay = "—"

// ParseISO parses an RFC3339 timestamp, tolerating a missing seconds
// component as produced by datetime inputs.
func ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		DatetimeLocalLayout,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// ISOToDatetimeLocal converts a stored RFC3339 timestamp to the local
// wall-clock editor representation. Empty input stays empty.
func ISOToDatetimeLocal(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return ""
	}
	t, err := ParseISO(iso)
	if err != nil {
		return ""
	}
	return t.In(time.Local).Format(DatetimeLocalLayout)
}

// DatetimeLocalToISO converts an editor value back to an RFC3339 UTC
// timestamp. The value is interpreted as local wall-clock time. Empty input
// stays empty.
func DatetimeLocalToISO(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	t, err := time.ParseInLocation(DatetimeLocalLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatDisplay renders a stored RFC3339 timestamp for display in local
// time. Unset or unparseable values render as EmptyDisplay.
func FormatDisplay(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return EmptyDisplay
	}
	t, err := ParseISO(iso)
	if err != nil {
		return EmptyDisplay
	}
	return t.In(time.Local).Format(displayLayout)
}

// FormatDisplayTime renders a time value with the display layout.
func FormatDisplayTime(t time.Time) string {
	if t.IsZero() {
		return EmptyDisplay
	}
	return t.In(time.Local).Format(displayLayout)
}

// MSTimestampToTime converts a string-encoded epoch-millisecond timestamp,
// as delivered in start_date_ms, to a time value.
func MSTimestampToTime(ms string) (time.Time, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(ms), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid millisecond timestamp %q: %w", ms, err)
	}
	return time.UnixMilli(n), nil
}

// Window computes the scheduled display window [start, start+buffer] from a
// string-encoded start timestamp and a non-negative buffer in hours.
func Window(startMS string, bufferHours float64) (start, end time.Time, err error) {
	start, err = MSTimestampToTime(startMS)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if bufferHours < 0 {
		bufferHours = 0
	}
	end = start.Add(time.Duration(bufferHours * float64(time.Hour)))
	return start, end, nil
}
