package wire

const (
	// WordSize is the size, in bytes, of the word unit all length fields
	// in the wire format are expressed in.
	WordSize = 4

	// EventHeaderMinWords is the minimum header length, in words, for an
	// EventHeader this package understands.
	EventHeaderMinWords = 3
	// EventHeaderMinSize is EventHeaderMinWords expressed in bytes.
	EventHeaderMinSize = EventHeaderMinWords * WordSize

	// PutHeaderMinWords is the minimum header length, in words, for a
	// PutHeader this package understands.
	PutHeaderMinWords = 10
	// PutHeaderMinSize is PutHeaderMinWords expressed in bytes.
	PutHeaderMinSize = PutHeaderMinWords * WordSize

	// OptionHeaderSize is the size, in bytes, of an option record's fixed
	// header (type + packed word count).
	OptionHeaderSize = 4
	// OptionExtendedWords is the sentinel words value in an option header
	// that indicates the real word count is carried in the following
	// 4-byte word instead of the 24-bit inline field.
	OptionExtendedWords = 0x7FFFFF

	// EventTypePut is the only event type this module's EventHeader
	// decoder accepts.
	EventTypePut uint8 = 1
)

// PUT header flag bits (byte 0 of PutHeader).
const (
	FlagMessageProperties uint8 = 1 << 0
	FlagOptions           uint8 = 1 << 1
	FlagUnused            uint8 = 1 << 2
)
