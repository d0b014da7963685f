package edit

import (
	"time"

	giteditor "github.com/rohansen856/git-editor"
)

// Modified tracks which fields of a row differ from the original snapshot.
type Modified struct {
	AuthorName  bool
	AuthorEmail bool
	When        bool
	Message     bool
}

// Row is one editable commit: the current field values plus the original
// snapshot they are diffed against. Rows only mutate through validated cell
// edits.
type Row struct {
	Index    int // position in the full history, 0-based
	Original *giteditor.CommitSnapshot

	AuthorName  string
	AuthorEmail string
	When        time.Time
	Message     string

	Modified Modified
}

// IsModified reports whether any field differs from the original.
func (r *Row) IsModified() bool {
	return r.Modified.AuthorName || r.Modified.AuthorEmail || r.Modified.When || r.Modified.Message
}

// Transform returns the field overrides for this row, carrying only the
// fields that actually changed. Unmodified rows return nil.
func (r *Row) Transform() *giteditor.FieldTransform {
	if !r.IsModified() {
		return nil
	}

	t := &giteditor.FieldTransform{}
	if r.Modified.AuthorName {
		name := r.AuthorName
		t.AuthorName = &name
	}
	if r.Modified.AuthorEmail {
		email := r.AuthorEmail
		t.AuthorEmail = &email
	}
	if r.Modified.When {
		when := r.When
		t.When = &when
	}
	if r.Modified.Message {
		message := r.Message
		t.Message = &message
	}

	return t
}

// NewRows seeds editable rows from a contiguous slice of history
// snapshots. startIdx is the 0-based position of the first snapshot in the
// full history, kept for display.
func NewRows(snapshots []*giteditor.CommitSnapshot, startIdx int) []*Row {
	rows := make([]*Row, 0, len(snapshots))
	for i, c := range snapshots {
		rows = append(rows, &Row{
			Index:       startIdx + i,
			Original:    c,
			AuthorName:  c.AuthorName,
			AuthorEmail: c.AuthorEmail,
			When:        c.When,
			Message:     c.Message,
		})
	}

	return rows
}
