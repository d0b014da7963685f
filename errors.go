// errors

package giteditor

import "errors"

var (
	ErrEmptyHistory         = errors.New("no commits found in repository")
	ErrDetachedHead         = errors.New("detached HEAD or invalid branch")
	ErrEmptyAuthorName      = errors.New("author name cannot be empty")
	ErrEmptyAuthorEmail     = errors.New("author email cannot be empty")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrEmptyMessage         = errors.New("commit message cannot be empty")
	ErrStartNotBeforeEnd    = errors.New("start datetime must be before end datetime")
	ErrRangeTooSmall        = errors.New("date range too small for commit count")
	ErrInvalidRangeSelector = errors.New("invalid range format, use format like '5-11'")
	ErrRangeOutOfBounds     = errors.New("range out of bounds")
	ErrTimestampCount       = errors.New("timestamp count does not match commit count")
)
