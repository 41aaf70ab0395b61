// Package putframe iterates the messages packed into a PUT event: the
// binary frame a broker sends a queue to deliver one or more published
// messages in a single write.
//
// # Core features
//
//   - Zero-copy reads: a message's application data and options area alias
//     the caller's buffer unless the decompression policy requires copying.
//   - Non-contiguous input: the buffer chain (cursor.Chain) accepts a PUT
//     event split across multiple network reads or scatter/gather segments
//     without requiring the caller to coalesce them first.
//   - Pluggable decompression policy: never decompress, always decompress,
//     or decompress only messages carrying legacy-format properties.
//   - MSG_GROUP_ID and arbitrary option records, surfaced through a lazy
//     options view that parses on first access.
//
// # Basic usage
//
//	it, err := putframe.Open(eventBytes, compress.PolicyAlways, false)
//	if err != nil {
//	    return err
//	}
//
//	for {
//	    n, err := it.Advance()
//	    if err != nil {
//	        return err
//	    }
//	    if n == 0 {
//	        break
//	    }
//
//	    size, _ := it.MessagePayloadSize()
//	    payload := make([]byte, size)
//	    it.LoadMessagePayload(payload)
//	}
//
// # Package structure
//
// This package provides convenience wrappers around the lower-level
// packages (cursor, wire, options, compress, properties, iterator). For
// scatter/gather input or fine-grained control over construction, use
// those packages directly.
package putframe

import (
	"github.com/relaymq/putframe/compress"
	"github.com/relaymq/putframe/cursor"
	"github.com/relaymq/putframe/iterator"
	"github.com/relaymq/putframe/wire"
)

// NewChain builds a buffer chain over one or more byte segments, in order.
// Use this directly instead of Open when a PUT event arrives split across
// multiple reads rather than as one contiguous slice.
func NewChain(segments ...[]byte) *cursor.Chain {
	return cursor.NewChain(segments)
}

// NewIterator constructs an iterator that decompresses according to
// policy. Reset must be called before Advance; Open does both steps at
// once for the common single-buffer case.
func NewIterator(policy compress.Policy, opts ...iterator.Option) (*iterator.PutMessageIterator, error) {
	return iterator.NewIterator(policy, opts...)
}

// WithMaxDecompressedSize caps the size of a decompressed message's
// application data. Advance fails a message whose decompressed application
// data exceeds it; the codec produces its full output before the size is
// checked.
func WithMaxDecompressedSize(n int) iterator.Option {
	return iterator.WithMaxDecompressedSize(n)
}

// Open parses data's event header and returns an iterator already Reset
// onto it, ready for Advance. data must be one contiguous PUT event; use
// NewChain and NewIterator directly for scatter/gather input or for
// reusing one iterator across many events.
//
// forceDecompressAlways overrides policy for this event only; see
// iterator.PutMessageIterator.Reset.
func Open(data []byte, policy compress.Policy, forceDecompressAlways bool, opts ...iterator.Option) (*iterator.PutMessageIterator, error) {
	eh, err := wire.ParseEventHeader(data)
	if err != nil {
		return nil, err
	}

	it, err := iterator.NewIterator(policy, opts...)
	if err != nil {
		return nil, err
	}

	if err := it.Reset(cursor.NewChain([][]byte{data}), eh, forceDecompressAlways); err != nil {
		return nil, err
	}

	return it, nil
}
