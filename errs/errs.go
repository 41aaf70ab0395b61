// Package errs defines the sentinel errors returned across the wire, cursor,
// options, compress, properties, and iterator packages.
//
// Callers should compare against these with errors.Is rather than matching
// error strings; internal code wraps them with fmt.Errorf("...: %w", ...)
// to attach positional context without losing the sentinel identity.
package errs

import "errors"

// Buffer cursor (C1) errors.
var (
	// ErrShortBuffer is returned when an advance or read requests more bytes
	// than remain in the buffer chain.
	ErrShortBuffer = errors.New("cursor: short buffer")
	// ErrInvalidRange is returned when a requested range falls outside the
	// buffer chain's total length.
	ErrInvalidRange = errors.New("cursor: invalid range")
)

// Fixed-header decoder (C2) / data-model errors, matching spec §7.
var (
	// ErrTruncatedHeader is returned when fewer bytes remain than a header
	// declares as its length.
	ErrTruncatedHeader = errors.New("wire: truncated header")
	// ErrInvalidLength is returned when a declared length is internally
	// inconsistent (total < header, or options overrun total).
	ErrInvalidLength = errors.New("wire: invalid length")
	// ErrInvalidPadding is returned when the trailing padding byte is not
	// in [1,4].
	ErrInvalidPadding = errors.New("wire: invalid padding")
	// ErrNotPutEvent is returned when an event header does not declare the
	// PUT event type.
	ErrNotPutEvent = errors.New("wire: event is not a PUT event")
	// ErrInvalidHeaderFlags is returned when a header's flag bits fail
	// range validation.
	ErrInvalidHeaderFlags = errors.New("wire: invalid header flags")
)

// Options view (C3) errors.
var (
	// ErrInvalidOption is returned when an option record's declared length
	// overruns the options area.
	ErrInvalidOption = errors.New("options: invalid option record")
	// ErrOptionNotFound reports that no record of a requested option type
	// exists. View.Find signals absence with ok=false and does not return
	// this error.
	ErrOptionNotFound = errors.New("options: option not found")
	// ErrGroupIDTooLong reports a MSG_GROUP_ID value longer than the
	// caller-provided buffer or the protocol maximum.
	// View.ExtractMsgGroupID signals that case with ok=false and does not
	// return this error.
	ErrGroupIDTooLong = errors.New("options: group id exceeds maximum length")
)

// Decompression stage (C4) errors.
var (
	// ErrUnsupportedCompression is returned when a PUT header's
	// compression-type field is not recognized under the active policy.
	ErrUnsupportedCompression = errors.New("compress: unsupported compression type")
	// ErrDecompressFailed is returned when a codec reports failure or the
	// decompressed size exceeds the configured maximum.
	ErrDecompressFailed = errors.New("compress: decompression failed")
	// ErrDecompressedTooLarge is returned when a codec would produce more
	// bytes than the configured cap allows.
	ErrDecompressedTooLarge = errors.New("compress: decompressed size exceeds limit")
)

// Message properties sub-header peek errors.
var (
	// ErrTruncatedProperties is returned when fewer bytes remain than the
	// properties sub-header declares.
	ErrTruncatedProperties = errors.New("properties: truncated sub-header")
)

// Iterator (C5) lifecycle errors.
var (
	// ErrInvalidIterator is returned by accessors when called on an
	// iterator that is not positioned on a message.
	ErrInvalidIterator = errors.New("iterator: not positioned on a message")
	// ErrBlobTooShort is returned by Reset when the buffer chain is
	// shorter than the event header declares.
	ErrBlobTooShort = errors.New("iterator: buffer shorter than event header declares")
	// ErrRebindLengthMismatch is returned by the rebind form of Reset when
	// the new buffer chain's total length does not match the source
	// iterator's cached total length.
	ErrRebindLengthMismatch = errors.New("iterator: rebind buffer length mismatch")
)
