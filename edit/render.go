package edit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	giteditor "github.com/rohansen856/git-editor"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	capsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	currentStyle = lipgloss.NewStyle().Reverse(true)
	editingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	footerStyle  = lipgloss.NewStyle().Italic(true)
)

var colWidths = map[Column]int{
	ColIndex:       4,
	ColHash:        8,
	ColAuthorName:  15,
	ColAuthorEmail: 20,
	ColTimestamp:   19,
	ColMessage:     40,
}

func (e *Editor) clearScreen() {
	termenv.NewOutput(e.out).ClearScreen()
}

func (e *Editor) capabilitiesLine() string {
	all := Capabilities{AuthorName: true, AuthorEmail: true, Timestamp: true, Message: true}
	if e.caps == all {
		return "All fields editable"
	}

	parts := make([]string, 0, 3)
	if e.caps.AuthorName || e.caps.AuthorEmail {
		parts = append(parts, "Author")
	}
	if e.caps.Timestamp {
		parts = append(parts, "Time")
	}
	if e.caps.Message {
		parts = append(parts, "Message")
	}

	return "Editable: " + strings.Join(parts, ", ")
}

func (e *Editor) cell(r *Row, col Column) string {
	var value string
	var modified bool

	switch col {
	case ColIndex:
		value = fmt.Sprintf("%d", r.Index+1)
	case ColHash:
		value = r.Original.ShortHash
	case ColAuthorName:
		value = r.AuthorName
		modified = r.Modified.AuthorName
	case ColAuthorEmail:
		value = r.AuthorEmail
		modified = r.Modified.AuthorEmail
	case ColTimestamp:
		value = giteditor.FormatTime(r.When)
		modified = r.Modified.When
	case ColMessage:
		value = firstMessageLine(r.Message)
		modified = r.Modified.Message
	}

	width := colWidths[col]
	value = runewidth.Truncate(value, width, "…")

	if modified {
		value = "*" + value
	}

	isCurrent := e.rows[e.row] == r && e.col == col
	if isCurrent && !e.editing && e.caps.Editable(col) {
		value = "[" + value + "]"
	}

	return runewidth.FillRight(value, width+2)
}

func (e *Editor) draw() {
	e.clearScreen()

	lines := make([]string, 0, len(e.rows)+8)

	lines = append(lines, titleStyle.Render("Interactive Commit Editor - Range Mode"))
	lines = append(lines, capsStyle.Render(e.capabilitiesLine()))
	lines = append(lines, hintStyle.Render("Use Arrow Keys to navigate, Enter to edit, Esc to save & exit, Ctrl+C to cancel"))
	lines = append(lines, "")

	header := make([]string, 0, len(columns))
	for _, col := range columns {
		header = append(header, runewidth.FillRight(columnTitle(col), colWidths[col]+2))
	}
	lines = append(lines, headerStyle.Render(strings.Join(header, "")))

	for i, r := range e.rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, e.cell(r, col))
		}

		line := strings.Join(cells, "")
		if i == e.row {
			if e.editing {
				line = editingStyle.Render(line)
			} else {
				line = currentStyle.Render(line)
			}
		}

		lines = append(lines, line)
	}

	lines = append(lines, "")

	if e.editing {
		lines = append(lines, hintStyle.Render("Editing: ")+string(e.buffer))
		if e.editErr != "" {
			lines = append(lines, errorStyle.Render("Error: "+e.editErr))
		}
		lines = append(lines, footerStyle.Render("Press Enter to save, Esc to cancel edit"))
	} else {
		lines = append(lines, footerStyle.Render("Navigation: arrows/hjkl  Edit: Enter  Save & Exit: Esc  Cancel: Ctrl+C"))
	}

	// raw mode needs explicit carriage returns
	fmt.Fprint(e.out, strings.Join(lines, "\r\n")+"\r\n")
}

func columnTitle(col Column) string {
	switch col {
	case ColIndex:
		return "#"
	case ColHash:
		return "HASH"
	case ColAuthorName:
		return "AUTHOR NAME"
	case ColAuthorEmail:
		return "AUTHOR EMAIL"
	case ColTimestamp:
		return "TIMESTAMP"
	case ColMessage:
		return "MESSAGE"
	default:
		return ""
	}
}

func firstMessageLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}
