package wire

import (
	"fmt"

	"github.com/relaymq/putframe/endian"
	"github.com/relaymq/putframe/errs"
)

// PutHeader is the fixed-size structure at the start of every PUT message.
type PutHeader struct {
	// Flags holds MESSAGE_PROPERTIES/OPTIONS/UNUSED and any future bits.
	Flags uint8
	// HeaderWords is this header's length in 4-byte words.
	HeaderWords uint8
	// OptionsWords is the options area's length in 4-byte words, a 24-bit
	// field. Zero means no options area.
	OptionsWords uint32
	// CompressionType identifies the codec applied to this message's
	// application data.
	CompressionType CompressionType
	// TotalMessageWords is this message's total length, including header,
	// options, application data, and padding, in 4-byte words.
	TotalMessageWords uint32
	// QueueID identifies the destination queue.
	QueueID uint32
	// MessageGUID is the broker-assigned message identifier.
	MessageGUID [16]byte
	// CRC32C is the Castagnoli CRC of the on-wire application data, read
	// verbatim; this package never recomputes or verifies it.
	CRC32C uint32
	// SchemaID identifies the message-properties schema, when present.
	SchemaID uint16
}

// HasMessageProperties reports whether the MESSAGE_PROPERTIES flag is set.
func (h PutHeader) HasMessageProperties() bool {
	return h.Flags&FlagMessageProperties != 0
}

// HasOptions reports whether this message carries an options area. The
// OPTIONS flag bit is implicit in a non-zero OptionsWords, so this checks
// both for robustness against headers that only set one of the two.
func (h PutHeader) HasOptions() bool {
	return h.OptionsWords > 0 || h.Flags&FlagOptions != 0
}

// HeaderBytes returns this header's declared length in bytes.
func (h PutHeader) HeaderBytes() int {
	return int(h.HeaderWords) * WordSize
}

// OptionsBytes returns the options area's declared length in bytes.
func (h PutHeader) OptionsBytes() int {
	return int(h.OptionsWords) * WordSize
}

// TotalMessageBytes returns this message's total declared length in bytes.
func (h PutHeader) TotalMessageBytes() int {
	return int(h.TotalMessageWords) * WordSize
}

// ParsePutHeader decodes and structurally validates a PutHeader from the
// leading bytes of data.
//
// It validates that: HeaderWords declares at least PutHeaderMinWords,
// TotalMessageWords is at least HeaderWords, and OptionsWords does not
// overrun the message (options fit within total-minus-header). It does not
// validate the compression type or flag combinations; see CompressionType
// and the options/iterator packages for that.
func ParsePutHeader(data []byte) (PutHeader, error) {
	if len(data) < PutHeaderMinSize {
		return PutHeader{}, fmt.Errorf("put header: %w", errs.ErrTruncatedHeader)
	}

	engine := endian.GetBigEndianEngine()

	h := PutHeader{
		Flags:       data[0],
		HeaderWords: data[1],
	}

	optionsHi := uint32(engine.Uint16(data[2:4]))
	optionsLo := uint32(data[4])
	h.OptionsWords = (optionsHi << 8) | optionsLo
	h.CompressionType = CompressionType((data[5] >> 5) & 0x7)

	h.TotalMessageWords = engine.Uint32(data[8:12])
	h.QueueID = engine.Uint32(data[12:16])
	copy(h.MessageGUID[:], data[16:32])
	h.CRC32C = engine.Uint32(data[32:36])
	h.SchemaID = engine.Uint16(data[36:38])

	if int(h.HeaderWords) < PutHeaderMinWords {
		return PutHeader{}, fmt.Errorf("put header: header words %d below minimum %d: %w",
			h.HeaderWords, PutHeaderMinWords, errs.ErrInvalidLength)
	}

	if h.TotalMessageWords < uint32(h.HeaderWords) {
		return PutHeader{}, fmt.Errorf("put header: total words %d shorter than header words %d: %w",
			h.TotalMessageWords, h.HeaderWords, errs.ErrInvalidLength)
	}

	available := h.TotalMessageWords - uint32(h.HeaderWords)
	if h.OptionsWords > available {
		return PutHeader{}, fmt.Errorf("put header: options words %d exceed available %d: %w",
			h.OptionsWords, available, errs.ErrInvalidLength)
	}

	if !h.CompressionType.InRange() {
		return PutHeader{}, fmt.Errorf("put header: compression type %d out of range: %w",
			h.CompressionType, errs.ErrInvalidHeaderFlags)
	}

	return h, nil
}

// Bytes serializes h into a new PutHeaderMinSize-byte slice. Reserved bytes
// are zero-filled. HeaderWords is written as given, but only the
// PutHeaderMinSize-byte fixed prefix is produced; callers needing
// extension words beyond the fixed header append to this prefix themselves.
func (h PutHeader) Bytes() []byte {
	b := make([]byte, PutHeaderMinSize)
	engine := endian.GetBigEndianEngine()

	b[0] = h.Flags
	b[1] = h.HeaderWords
	engine.PutUint16(b[2:4], uint16(h.OptionsWords>>8))
	b[4] = byte(h.OptionsWords)
	b[5] = byte(h.CompressionType&0x7) << 5
	engine.PutUint32(b[8:12], h.TotalMessageWords)
	engine.PutUint32(b[12:16], h.QueueID)
	copy(b[16:32], h.MessageGUID[:])
	engine.PutUint32(b[32:36], h.CRC32C)
	engine.PutUint16(b[36:38], h.SchemaID)

	return b
}
