package edit

import (
	"fmt"
	"io"
	"os"
	"strings"

	giteditor "github.com/rohansen856/git-editor"
)

const (
	keyCtrlC     = 3
	keyBackspace = 8
	keyEnter     = 13
	keyLineFeed  = 10
	keyEsc       = 27
	keyDelete    = 127
)

// Editor is the single-threaded state machine over a contiguous range of
// commits. It is either browsing the grid or editing one cell; both states
// exit through Esc (save) or Ctrl+C (discard).
type Editor struct {
	rows []*Row
	caps Capabilities

	row     int
	col     Column
	editing bool
	buffer  []rune
	editErr string
	esc     []byte

	saved bool
	done  bool

	in   io.Reader
	out  io.Writer
	term Terminal
}

// Option configures an [Editor].
type Option func(*Editor)

// WithInput replaces the key input stream, one byte per keypress.
func WithInput(r io.Reader) Option {
	return func(e *Editor) { e.in = r }
}

// WithOutput replaces the render target.
func WithOutput(w io.Writer) Option {
	return func(e *Editor) { e.out = w }
}

// WithTerminal replaces the raw-mode controller.
func WithTerminal(t Terminal) Option {
	return func(e *Editor) { e.term = t }
}

// New builds an editor over the given contiguous history slice. startIdx is
// the 0-based offset of the slice in the full history. An empty capability
// set makes all four fields editable.
func New(snapshots []*giteditor.CommitSnapshot, startIdx int, caps Capabilities, opts ...Option) *Editor {
	caps = caps.normalized()

	e := &Editor{
		rows: NewRows(snapshots, startIdx),
		caps: caps,
		col:  caps.firstEditable(),
		in:   os.Stdin,
		out:  os.Stdout,
		term: NewTTY(os.Stdin),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run drives the keypress loop until the operator exits. It reports whether
// the pending edits should be applied. The terminal is restored and the
// screen cleared on every exit path, including input failures.
func (e *Editor) Run() (saved bool, err error) {
	restore, err := e.term.MakeRaw()
	if err != nil {
		return false, fmt.Errorf("cannot enter raw terminal mode: %w", err)
	}

	defer func() {
		restoreErr := restore()
		e.clearScreen()
		if err == nil {
			err = restoreErr
		}
	}()

	var buf [1]byte
	for !e.done {
		e.draw()

		if _, readErr := io.ReadFull(e.in, buf[:]); readErr != nil {
			return false, fmt.Errorf("terminal read failed: %w", readErr)
		}

		if e.editing {
			e.handleEditKey(buf[0])
		} else {
			e.handleBrowseKey(buf[0])
		}
	}

	return e.saved, nil
}

// Changes returns the planned change for every modified row, with only the
// fields that actually differ from the original snapshots.
func (e *Editor) Changes() []*giteditor.PlannedChange {
	changes := make([]*giteditor.PlannedChange, 0)
	for _, r := range e.rows {
		if !r.IsModified() {
			continue
		}

		changes = append(changes, &giteditor.PlannedChange{
			Snapshot:  r.Original,
			Transform: r.Transform(),
		})
	}

	return changes
}

// Plan collects the modified rows into a rewrite plan.
func (e *Editor) Plan() giteditor.Plan {
	return giteditor.NewPlan(e.Changes())
}

func (e *Editor) exit(saved bool) {
	e.done = true
	e.saved = saved
}

func (e *Editor) handleBrowseKey(b byte) {
	if len(e.esc) > 0 {
		e.esc = append(e.esc, b)

		if len(e.esc) == 2 && b != '[' {
			// not a sequence: the introducer was a lone Esc
			e.esc = nil
			e.exit(true)
			return
		}

		if len(e.esc) == 3 {
			final := e.esc[2]
			e.esc = nil

			switch final {
			case 'A':
				e.moveUp()
			case 'B':
				e.moveDown()
			case 'D':
				e.col = prevEditable(e.caps, e.col)
			case 'C':
				e.col = nextEditable(e.caps, e.col)
			default:
				e.exit(true)
			}
		}

		return
	}

	switch b {
	case keyEsc:
		e.esc = append(e.esc, b)
	case 'k':
		e.moveUp()
	case 'j':
		e.moveDown()
	case 'h':
		e.col = prevEditable(e.caps, e.col)
	case 'l':
		e.col = nextEditable(e.caps, e.col)
	case keyEnter, keyLineFeed:
		e.startEdit()
	case keyCtrlC:
		e.exit(false)
	}
}

func (e *Editor) handleEditKey(b byte) {
	switch {
	case b == keyEsc:
		e.editing = false
		e.buffer = nil
		e.editErr = ""
	case b == keyEnter || b == keyLineFeed:
		if err := e.commitEdit(); err != nil {
			e.editErr = err.Error()
			return
		}
		e.editing = false
		e.buffer = nil
		e.editErr = ""
	case b == keyDelete || b == keyBackspace:
		if len(e.buffer) > 0 {
			e.buffer = e.buffer[:len(e.buffer)-1]
		}
	case b == keyCtrlC:
		e.exit(false)
	case b >= 32 && b <= 126:
		e.buffer = append(e.buffer, rune(b))
	}
}

func (e *Editor) moveUp() {
	if e.row > 0 {
		e.row -= 1
	}
}

func (e *Editor) moveDown() {
	if e.row < len(e.rows)-1 {
		e.row += 1
	}
}

// startEdit seeds the edit buffer with the cell's current value. The
// message cell always seeds the full message, not the truncated first line
// the grid shows.
func (e *Editor) startEdit() {
	if !e.caps.Editable(e.col) {
		return
	}

	r := e.rows[e.row]

	var seed string
	switch e.col {
	case ColAuthorName:
		seed = r.AuthorName
	case ColAuthorEmail:
		seed = r.AuthorEmail
	case ColTimestamp:
		seed = giteditor.FormatTime(r.When)
	case ColMessage:
		seed = r.Message
	}

	e.editing = true
	e.editErr = ""
	e.buffer = []rune(seed)
}

// commitEdit validates the buffer for the active cell and applies it. The
// modified flag tracks difference against the original snapshot, so editing
// a value back to the original clears it.
func (e *Editor) commitEdit() error {
	r := e.rows[e.row]
	val := string(e.buffer)

	switch e.col {
	case ColAuthorName:
		if strings.TrimSpace(val) == "" {
			return giteditor.ErrEmptyAuthorName
		}
		r.AuthorName = val
		r.Modified.AuthorName = r.AuthorName != r.Original.AuthorName
	case ColAuthorEmail:
		if strings.TrimSpace(val) == "" {
			return giteditor.ErrEmptyAuthorEmail
		}
		if !strings.Contains(val, "@") {
			return giteditor.ErrInvalidEmail
		}
		r.AuthorEmail = val
		r.Modified.AuthorEmail = r.AuthorEmail != r.Original.AuthorEmail
	case ColTimestamp:
		when, err := giteditor.ParseTime(val)
		if err != nil {
			return err
		}
		r.When = when
		r.Modified.When = !r.When.Equal(r.Original.When)
	case ColMessage:
		if strings.TrimSpace(val) == "" {
			return giteditor.ErrEmptyMessage
		}
		r.Message = val
		r.Modified.Message = r.Message != r.Original.Message
	}

	return nil
}
