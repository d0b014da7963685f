package edit

import (
	"os"

	"golang.org/x/term"
)

// Terminal is the scoped raw-mode resource of the editor. MakeRaw switches
// the operator's terminal into raw input mode and returns the function that
// restores the prior state; the editor calls it on every exit path.
type Terminal interface {
	MakeRaw() (restore func() error, err error)
}

type tty struct {
	fd int
}

// NewTTY wraps an open terminal file, usually os.Stdin.
func NewTTY(f *os.File) Terminal {
	return &tty{fd: int(f.Fd())}
}

func (t *tty) MakeRaw() (func() error, error) {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}

	return func() error { return term.Restore(t.fd, state) }, nil
}

// nopTerminal is used when the input is a scripted stream instead of a real
// terminal.
type nopTerminal struct{}

func (nopTerminal) MakeRaw() (func() error, error) {
	return func() error { return nil }, nil
}
