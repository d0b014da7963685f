package edit

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	giteditor "github.com/rohansen856/git-editor"
)

var fixtureBase = time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)

func fixtureSnapshots() []*giteditor.CommitSnapshot {
	return []*giteditor.CommitSnapshot{
		{
			Hash:        plumbing.NewHash("0000000000000000000000000000000000000001"),
			ShortHash:   "00000000",
			When:        fixtureBase,
			AuthorName:  "Dev One",
			AuthorEmail: "a@b.co",
			Message:     "first commit\n\nwith a body\n",
		},
		{
			Hash:        plumbing.NewHash("0000000000000000000000000000000000000002"),
			ShortHash:   "00000000",
			When:        fixtureBase.Add(24 * time.Hour),
			AuthorName:  "Dev Two",
			AuthorEmail: "two@example.com",
			Message:     "second commit\n",
			ParentCount: 1,
		},
		{
			Hash:        plumbing.NewHash("0000000000000000000000000000000000000003"),
			ShortHash:   "00000000",
			When:        fixtureBase.Add(48 * time.Hour),
			AuthorName:  "Dev Two",
			AuthorEmail: "two@example.com",
			Message:     "third commit\n",
			ParentCount: 1,
		},
	}
}

func scriptedEditor(script []byte, caps Capabilities) *Editor {
	return New(fixtureSnapshots(), 0, caps,
		WithInput(bytes.NewReader(script)),
		WithOutput(io.Discard),
		WithTerminal(nopTerminal{}))
}

func TestEditorNavigation(t *testing.T) {
	// vi keys plus one arrow sequence each way, then discard
	script := []byte{
		'j', 'j', 'j', 'k', 'l',
		keyEsc, '[', 'B',
		keyEsc, '[', 'D',
		keyCtrlC,
	}

	e := scriptedEditor(script, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)

	assert.False(t, saved)
	assert.Equal(t, 2, e.row)
	assert.Equal(t, ColAuthorName, e.col)
	assert.Empty(t, e.Changes())
}

func TestEditorLoneEscSaves(t *testing.T) {
	e := scriptedEditor([]byte{keyEsc, 'q'}, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)

	assert.True(t, saved)
}

func TestEditorUnknownEscapeSequenceSaves(t *testing.T) {
	e := scriptedEditor([]byte{keyEsc, '[', 'Z'}, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)

	assert.True(t, saved)
}

func TestEditorCtrlCDiscardsInEditMode(t *testing.T) {
	e := scriptedEditor([]byte{keyEnter, 'X', keyCtrlC}, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)

	assert.False(t, saved)
}

func TestEditorEditAuthorName(t *testing.T) {
	script := []byte{keyEnter, 'X', keyEnter, keyEsc, 'q'}

	e := scriptedEditor(script, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)
	require.True(t, saved)

	changes := e.Changes()
	require.Len(t, changes, 1)
	require.NotNil(t, changes[0].Transform.AuthorName)
	assert.Equal(t, "Dev OneX", *changes[0].Transform.AuthorName)
	assert.Nil(t, changes[0].Transform.AuthorEmail)
	assert.Nil(t, changes[0].Transform.When)
	assert.Nil(t, changes[0].Transform.Message)

	assert.True(t, e.rows[0].Modified.AuthorName)
	assert.Len(t, e.Plan(), 1)
}

func TestEditorEditTimestamp(t *testing.T) {
	// seed is "2020-03-01 12:00:00"; replace the seconds
	script := []byte{'l', 'l', keyEnter, keyDelete, keyDelete, '3', '0', keyEnter, keyEsc, 'q'}

	e := scriptedEditor(script, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)
	require.True(t, saved)

	changes := e.Changes()
	require.Len(t, changes, 1)
	require.NotNil(t, changes[0].Transform.When)
	assert.Equal(t, fixtureBase.Add(30*time.Second), changes[0].Transform.When.UTC())
}

func TestEditorCancelEditKeepsRow(t *testing.T) {
	script := []byte{keyEnter, 'X', keyEsc, keyEsc, 'q'}

	e := scriptedEditor(script, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)
	require.True(t, saved)

	assert.Equal(t, "Dev One", e.rows[0].AuthorName)
	assert.False(t, e.rows[0].IsModified())
	assert.Empty(t, e.Changes())
}

func TestEditorEditBackToOriginalClearsModified(t *testing.T) {
	script := []byte{
		keyEnter, 'X', keyEnter, // "Dev One" -> "Dev OneX"
		keyEnter, keyDelete, keyEnter, // and back again
		keyEsc, 'q',
	}

	e := scriptedEditor(script, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)
	require.True(t, saved)

	assert.Equal(t, "Dev One", e.rows[0].AuthorName)
	assert.False(t, e.rows[0].IsModified())
	assert.Empty(t, e.Changes())
}

func TestEditorRejectsInvalidEmail(t *testing.T) {
	// clear the 6-character seed, type a value without an @, then bail out
	script := []byte{
		'l', keyEnter,
		keyDelete, keyDelete, keyDelete, keyDelete, keyDelete, keyDelete,
		'b', 'a', 'd', keyEnter,
		keyCtrlC,
	}

	e := scriptedEditor(script, Capabilities{})
	saved, err := e.Run()
	require.NoError(t, err)

	assert.False(t, saved)
	assert.True(t, e.editing)
	assert.Equal(t, "bad", string(e.buffer))
	assert.Equal(t, giteditor.ErrInvalidEmail.Error(), e.editErr)
	assert.Equal(t, "a@b.co", e.rows[0].AuthorEmail)
	assert.False(t, e.rows[0].IsModified())
}

func TestEditorCapabilityRestriction(t *testing.T) {
	script := []byte{'l', 'h', keyCtrlC}

	e := scriptedEditor(script, Capabilities{Timestamp: true})
	require.Equal(t, ColTimestamp, e.col)

	_, err := e.Run()
	require.NoError(t, err)

	// the only editable column wraps onto itself
	assert.Equal(t, ColTimestamp, e.col)
}

func TestEditorStartEditSeeds(t *testing.T) {
	e := scriptedEditor(nil, Capabilities{})

	e.col = ColMessage
	e.startEdit()
	require.True(t, e.editing)
	assert.Equal(t, "first commit\n\nwith a body\n", string(e.buffer))

	e.editing = false
	e.col = ColTimestamp
	e.startEdit()
	assert.Equal(t, "2020-03-01 12:00:00", string(e.buffer))
}

func TestEditorStartEditIgnoresReadOnlyColumn(t *testing.T) {
	e := scriptedEditor(nil, Capabilities{AuthorName: true})

	e.col = ColMessage
	e.startEdit()
	assert.False(t, e.editing)
}

func TestEditorInputFailure(t *testing.T) {
	e := scriptedEditor(nil, Capabilities{})
	_, err := e.Run()
	require.Error(t, err)
}

// recordingTerminal counts raw-mode transitions so tests can assert the
// terminal state is restored.
type recordingTerminal struct {
	rawCalls     int
	restoreCalls int
}

func (t *recordingTerminal) MakeRaw() (func() error, error) {
	t.rawCalls++

	return func() error {
		t.restoreCalls++
		return nil
	}, nil
}

func TestEditorRestoresTerminal(t *testing.T) {
	cases := []struct {
		name   string
		script []byte
	}{
		{"save exit", []byte{keyEsc, 'q'}},
		{"discard exit", []byte{keyCtrlC}},
		{"discard while editing", []byte{keyEnter, keyCtrlC}},
		{"input failure", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term := &recordingTerminal{}
			e := New(fixtureSnapshots(), 0, Capabilities{},
				WithInput(bytes.NewReader(tc.script)),
				WithOutput(io.Discard),
				WithTerminal(term))

			_, _ = e.Run()

			assert.Equal(t, 1, term.rawCalls)
			assert.Equal(t, 1, term.restoreCalls)
		})
	}
}
