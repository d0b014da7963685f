package edit

// Column identifies one cell column of the editor grid.
type Column int

const (
	ColIndex Column = iota
	ColHash
	ColAuthorName
	ColAuthorEmail
	ColTimestamp
	ColMessage
)

var columns = [...]Column{
	ColIndex,
	ColHash,
	ColAuthorName,
	ColAuthorEmail,
	ColTimestamp,
	ColMessage,
}

// Capabilities selects which fields a session may edit. The zero value
// means no restriction: all four fields editable.
type Capabilities struct {
	AuthorName  bool
	AuthorEmail bool
	Timestamp   bool
	Message     bool
}

func (c Capabilities) normalized() Capabilities {
	if !c.AuthorName && !c.AuthorEmail && !c.Timestamp && !c.Message {
		return Capabilities{AuthorName: true, AuthorEmail: true, Timestamp: true, Message: true}
	}

	return c
}

// Editable reports whether the column can be edited under these
// capabilities. The index and hash columns are always read-only.
func (c Capabilities) Editable(col Column) bool {
	switch col {
	case ColAuthorName:
		return c.AuthorName
	case ColAuthorEmail:
		return c.AuthorEmail
	case ColTimestamp:
		return c.Timestamp
	case ColMessage:
		return c.Message
	default:
		return false
	}
}

func (c Capabilities) firstEditable() Column {
	for _, col := range columns {
		if c.Editable(col) {
			return col
		}
	}

	return ColAuthorName
}

func nextEditable(c Capabilities, from Column) Column {
	n := len(columns)
	for i := 1; i <= n; i++ {
		col := columns[(int(from)+i)%n]
		if c.Editable(col) {
			return col
		}
	}

	return from
}

func prevEditable(c Capabilities, from Column) Column {
	n := len(columns)
	for i := 1; i <= n; i++ {
		col := columns[((int(from)-i)%n+n)%n]
		if c.Editable(col) {
			return col
		}
	}

	return from
}
