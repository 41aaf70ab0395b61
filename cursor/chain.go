package cursor

import (
	"sort"

	"github.com/relaymq/putframe/errs"
)

// Position identifies a byte within a Chain as a (segment index, offset
// within that segment) pair.
type Position struct {
	Segment int
	Offset  int
}

// Chain is an ordered, read-only sequence of byte segments addressed as one
// logical byte range. It does not own the segments' backing arrays and does
// not copy them on construction.
type Chain struct {
	segments [][]byte
	starts   []int // starts[i] is the absolute byte offset where segments[i] begins
	total    int
}

// NewChain builds a Chain over the given segments, in order. Empty segments
// are permitted and contribute no bytes.
func NewChain(segments [][]byte) *Chain {
	starts := make([]int, len(segments))
	total := 0
	for i, seg := range segments {
		starts[i] = total
		total += len(seg)
	}

	return &Chain{segments: segments, starts: starts, total: total}
}

// Len returns the total number of bytes across all segments.
func (c *Chain) Len() int {
	return c.total
}

// SegmentCount returns the number of segments in the chain.
func (c *Chain) SegmentCount() int {
	return len(c.segments)
}

// PositionAt converts an absolute byte offset into a Position. An offset
// equal to Len() yields the end-of-chain sentinel (Segment == -1).
func (c *Chain) PositionAt(offset int) (Position, error) {
	if offset < 0 || offset > c.total {
		return Position{}, errs.ErrInvalidRange
	}

	if offset == c.total {
		return Position{Segment: -1}, nil
	}

	// starts is non-decreasing; find the last segment whose start is <= offset.
	idx := sort.Search(len(c.starts), func(i int) bool { return c.starts[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}

	return Position{Segment: idx, Offset: offset - c.starts[idx]}, nil
}

// ReadInto gather-copies len(dst) bytes starting at the absolute offset
// start into dst. It returns ErrShortBuffer if fewer bytes remain.
func (c *Chain) ReadInto(dst []byte, start int) error {
	n := len(dst)
	if start < 0 || n < 0 || start+n > c.total {
		return errs.ErrShortBuffer
	}

	pos, err := c.PositionAt(start)
	if err != nil {
		return err
	}

	written := 0
	seg, off := pos.Segment, pos.Offset
	for written < n {
		chunk := c.segments[seg][off:]
		need := n - written
		if len(chunk) > need {
			chunk = chunk[:need]
		}
		copy(dst[written:], chunk)
		written += len(chunk)
		seg++
		off = 0
	}

	return nil
}

// Slice produces a Range descriptor for [start, start+length) without
// copying. The range may span multiple segments; use Range.Bytes to check
// whether it happens to be zero-copy.
func (c *Chain) Slice(start, length int) (Range, error) {
	if start < 0 || length < 0 || start+length > c.total {
		return Range{}, errs.ErrInvalidRange
	}

	return Range{chain: c, start: start, length: length}, nil
}
