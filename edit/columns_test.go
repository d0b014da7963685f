package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesDefaultAllEditable(t *testing.T) {
	caps := Capabilities{}.normalized()

	assert.True(t, caps.Editable(ColAuthorName))
	assert.True(t, caps.Editable(ColAuthorEmail))
	assert.True(t, caps.Editable(ColTimestamp))
	assert.True(t, caps.Editable(ColMessage))

	assert.False(t, caps.Editable(ColIndex))
	assert.False(t, caps.Editable(ColHash))
}

func TestCapabilitiesSingleField(t *testing.T) {
	caps := Capabilities{Timestamp: true}.normalized()

	assert.False(t, caps.Editable(ColAuthorName))
	assert.False(t, caps.Editable(ColAuthorEmail))
	assert.True(t, caps.Editable(ColTimestamp))
	assert.False(t, caps.Editable(ColMessage))

	assert.Equal(t, ColTimestamp, caps.firstEditable())
}

func TestColumnMovementSkipsAndWraps(t *testing.T) {
	caps := Capabilities{AuthorName: true, Message: true}.normalized()

	// right from author name skips email and timestamp
	assert.Equal(t, ColMessage, nextEditable(caps, ColAuthorName))
	// right from message wraps past index and hash back to author name
	assert.Equal(t, ColAuthorName, nextEditable(caps, ColMessage))

	assert.Equal(t, ColAuthorName, prevEditable(caps, ColMessage))
	assert.Equal(t, ColMessage, prevEditable(caps, ColAuthorName))
}

func TestColumnMovementSingleEditable(t *testing.T) {
	caps := Capabilities{AuthorEmail: true}.normalized()

	assert.Equal(t, ColAuthorEmail, nextEditable(caps, ColAuthorEmail))
	assert.Equal(t, ColAuthorEmail, prevEditable(caps, ColAuthorEmail))
}
