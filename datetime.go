package giteditor

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the textual timestamp format accepted and printed at every
// boundary of this package.
const TimeLayout = "2006-01-02 15:04:05"

// ParseTime parses a timestamp in the [TimeLayout] format.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (use YYYY-MM-DD HH:MM:SS): %w", s, err)
	}

	return t, nil
}

// FormatTime renders a timestamp in the [TimeLayout] format.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseRangeSelector parses a 1-based inclusive commit range selector such
// as "5-11". Start must be at least 1 and end must not be smaller than
// start.
func ParseRangeSelector(input string) (start int, end int, err error) {
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidRangeSelector
	}

	start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid start number %q", ErrInvalidRangeSelector, parts[0])
	}

	end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid end number %q", ErrInvalidRangeSelector, parts[1])
	}

	if start < 1 {
		return 0, 0, fmt.Errorf("%w: start position must be 1 or greater", ErrInvalidRangeSelector)
	}

	if end < start {
		return 0, 0, fmt.Errorf("%w: end position must be greater than or equal to start position", ErrInvalidRangeSelector)
	}

	return start, end, nil
}
