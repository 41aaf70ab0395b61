package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorAdvanceAndRemaining(t *testing.T) {
	c := New(threeSegmentChain())
	require.Equal(t, 10, c.Remaining())
	require.False(t, c.AtEnd())

	require.NoError(t, c.Advance(4))
	require.Equal(t, 4, c.Offset())
	require.Equal(t, 6, c.Remaining())

	pos, err := c.Position()
	require.NoError(t, err)
	require.Equal(t, Position{1, 0}, pos)

	require.NoError(t, c.Advance(6))
	require.True(t, c.AtEnd())
}

func TestCursorAdvancePastEndFails(t *testing.T) {
	c := New(threeSegmentChain())
	require.Error(t, c.Advance(11))
	require.Equal(t, 0, c.Offset(), "a failed advance must not move the cursor")
}

func TestCursorReadIntoDoesNotMove(t *testing.T) {
	c := New(threeSegmentChain())
	require.NoError(t, c.Advance(3))

	dst := make([]byte, 3)
	require.NoError(t, c.ReadInto(dst))
	require.Equal(t, "345", string(dst))
	require.Equal(t, 3, c.Offset(), "ReadInto must not advance the cursor")
}

func TestCursorRange(t *testing.T) {
	c := New(threeSegmentChain())
	require.NoError(t, c.Advance(4))

	r, err := c.Range(4)
	require.NoError(t, err)
	b, ok := r.Bytes()
	require.True(t, ok)
	require.Equal(t, "4567", string(b))
	require.Equal(t, 4, c.Offset(), "Range must not advance the cursor")
}
