package giteditor

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// ValidateIdentity checks the author name and email a rewrite would stamp on
// commits. The name must be non-empty and the email must have a plausible
// mailbox shape.
func ValidateIdentity(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyAuthorName
	}

	if strings.TrimSpace(email) == "" {
		return ErrEmptyAuthorEmail
	}

	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return nil
}

// ValidateTimeRange checks that start is strictly before end.
func ValidateTimeRange(start, end time.Time) error {
	if !start.Before(end) {
		return ErrStartNotBeforeEnd
	}

	return nil
}

// ValidateRangeBounds checks a parsed 1-based inclusive selector against the
// history length and converts it to 0-based indices.
func ValidateRangeBounds(start, end, total int) (startIdx int, endIdx int, err error) {
	if start > total || end > total {
		return 0, 0, fmt.Errorf("%w: available commits: 1-%d", ErrRangeOutOfBounds, total)
	}

	return start - 1, end - 1, nil
}
