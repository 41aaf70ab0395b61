package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func threeSegmentChain() *Chain {
	return NewChain([][]byte{
		[]byte("0123"), // offsets 0-3
		[]byte("4567"), // offsets 4-7
		[]byte("89"),   // offsets 8-9
	})
}

func TestChainLen(t *testing.T) {
	c := threeSegmentChain()
	require.Equal(t, 10, c.Len())
	require.Equal(t, 3, c.SegmentCount())
}

func TestChainPositionAt(t *testing.T) {
	c := threeSegmentChain()

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{0, 0}},
		{3, Position{0, 3}},
		{4, Position{1, 0}},
		{7, Position{1, 3}},
		{8, Position{2, 0}},
		{9, Position{2, 1}},
		{10, Position{-1, 0}},
	}
	for _, tt := range tests {
		got, err := c.PositionAt(tt.offset)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := c.PositionAt(-1)
	require.Error(t, err)
	_, err = c.PositionAt(11)
	require.Error(t, err)
}

func TestChainReadIntoAcrossSeams(t *testing.T) {
	c := threeSegmentChain()

	dst := make([]byte, 6)
	require.NoError(t, c.ReadInto(dst, 2))
	require.Equal(t, "234567", string(dst))

	dst = make([]byte, 10)
	require.NoError(t, c.ReadInto(dst, 0))
	require.Equal(t, "0123456789", string(dst))
}

func TestChainReadIntoShort(t *testing.T) {
	c := threeSegmentChain()
	dst := make([]byte, 5)
	require.Error(t, c.ReadInto(dst, 8))
}

func TestChainSlice(t *testing.T) {
	c := threeSegmentChain()

	r, err := c.Slice(2, 4)
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())
	// straddles segment 0 and 1, so no zero-copy view
	_, ok := r.Bytes()
	require.False(t, ok)
	require.Equal(t, "2345", string(r.CopyOutNew()))

	r, err = c.Slice(4, 4)
	require.NoError(t, err)
	b, ok := r.Bytes()
	require.True(t, ok)
	require.Equal(t, "4567", string(b))

	_, err = c.Slice(5, 10)
	require.Error(t, err)
}

func TestChainEmptySegmentsAreSkippable(t *testing.T) {
	c := NewChain([][]byte{{}, []byte("ab"), {}, []byte("cd")})
	require.Equal(t, 4, c.Len())

	dst := make([]byte, 4)
	require.NoError(t, c.ReadInto(dst, 0))
	require.Equal(t, "abcd", string(dst))
}
