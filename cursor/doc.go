// Package cursor provides position arithmetic over a chain of fixed-size
// byte segments, without requiring the chain to be materialized as one
// contiguous slice.
//
// # Overview
//
// A transport layer delivers a PUT event as a sequence of buffers rather
// than one allocation:
//
//	┌──────────────┐  ┌──────────────┐  ┌──────────┐
//	│  segment 0   │  │  segment 1   │  │ segment 2│
//	│  (N bytes)   │  │  (N bytes)   │  │ (< N)    │
//	└──────────────┘  └──────────────┘  └──────────┘
//	       └──────────────┴────────────────┘
//	              one logical Chain
//
// Chain exposes the chain as one logical address space addressed by an
// absolute byte offset, and converts between that offset and a
// (segment index, offset-in-segment) Position pair in O(log segments).
// Cursor layers a monotonically-advancing read position on top of a Chain,
// matching the forward-only access discipline the PUT message iterator
// requires: it never seeks backward, and it never needs the chain's bytes
// copied into one buffer before parsing can begin.
//
// # Zero-copy discipline
//
// Range describes a byte span without copying it. When the span lies
// entirely within one segment, Bytes returns a direct slice into that
// segment; otherwise CopyOut or CopyOutNew gather the span into one
// allocation. Callers that need a guaranteed zero-copy view call Bytes and
// treat a false second return as "this span happens to straddle
// a segment seam", which is rare in practice but must be handled.
package cursor
