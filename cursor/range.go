package cursor

// Range describes a byte span within a Chain without copying it.
type Range struct {
	chain  *Chain
	start  int
	length int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int {
	return r.length
}

// Start returns the range's absolute byte offset within its Chain.
func (r Range) Start() int {
	return r.start
}

// Chain returns the Chain this range is defined over.
func (r Range) Chain() *Chain {
	return r.chain
}

// Bytes returns a direct slice into the Chain's backing segment when the
// range lies entirely within one segment. The second return is false when
// the range straddles a segment seam, in which case the caller should fall
// back to CopyOut or CopyOutNew.
func (r Range) Bytes() ([]byte, bool) {
	if r.length == 0 {
		return nil, true
	}

	pos, err := r.chain.PositionAt(r.start)
	if err != nil {
		return nil, false
	}

	seg := r.chain.segments[pos.Segment]
	end := pos.Offset + r.length
	if end > len(seg) {
		return nil, false
	}

	return seg[pos.Offset:end], true
}

// CopyOut gather-copies the range into dst, which must have length >= Len.
// It returns the number of bytes written.
func (r Range) CopyOut(dst []byte) int {
	if r.length == 0 {
		return 0
	}

	if err := r.chain.ReadInto(dst[:r.length], r.start); err != nil {
		return 0
	}

	return r.length
}

// CopyOutNew allocates a new slice and gather-copies the range into it.
func (r Range) CopyOutNew() []byte {
	if r.length == 0 {
		return nil
	}

	buf := make([]byte, r.length)
	r.CopyOut(buf)

	return buf
}
