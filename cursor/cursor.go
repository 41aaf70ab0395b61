package cursor

import "github.com/relaymq/putframe/errs"

// Cursor tracks a single monotonically-advancing read position within a
// Chain. It never seeks backward; callers that need to address an earlier
// or arbitrary byte use Chain.Slice/Chain.ReadInto directly.
type Cursor struct {
	chain  *Chain
	offset int
}

// New creates a Cursor positioned at the start of chain.
func New(chain *Chain) *Cursor {
	return &Cursor{chain: chain}
}

// Offset returns the cursor's current absolute byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of bytes between the current position and
// the end of the chain.
func (c *Cursor) Remaining() int {
	return c.chain.Len() - c.offset
}

// AtEnd reports whether the cursor has reached the end of the chain.
func (c *Cursor) AtEnd() bool {
	return c.offset >= c.chain.Len()
}

// Position returns the cursor's current (segment, offset) pair.
func (c *Cursor) Position() (Position, error) {
	return c.chain.PositionAt(c.offset)
}

// Advance moves the cursor forward by exactly n bytes. It returns
// ErrShortBuffer, leaving the cursor unmoved, if fewer than n bytes remain.
func (c *Cursor) Advance(n int) error {
	if n < 0 || n > c.Remaining() {
		return errs.ErrShortBuffer
	}

	c.offset += n

	return nil
}

// ReadInto gather-copies len(dst) bytes starting at the current position
// into dst without moving the cursor.
func (c *Cursor) ReadInto(dst []byte) error {
	return c.chain.ReadInto(dst, c.offset)
}

// Range produces a Range descriptor for the next length bytes starting at
// the current position, without moving the cursor and without copying.
func (c *Cursor) Range(length int) (Range, error) {
	return c.chain.Slice(c.offset, length)
}
