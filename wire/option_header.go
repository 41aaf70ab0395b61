package wire

import (
	"fmt"

	"github.com/relaymq/putframe/endian"
	"github.com/relaymq/putframe/errs"
)

// OptionType identifies the kind of an option record.
type OptionType uint8

// OptionMsgGroupID is the only option type the wire format names
// explicitly; all others must be skippable by length.
const OptionMsgGroupID OptionType = 1

// OptionHeader is the fixed-size prefix of one option record: a packed bit,
// a 7-bit type tag, and a 24-bit word count (extended to a following 32-bit
// word when the inline field reads OptionExtendedWords).
type OptionHeader struct {
	// Packed indicates the option's value occupies fewer than a whole
	// word and is bit-packed rather than byte-aligned.
	Packed bool
	Type   OptionType
	// Words is the option record's total length, including this header,
	// in 4-byte words.
	Words uint32
	// HeaderBytes is 4 for an inline record or 8 when the extended
	// 32-bit word count was present.
	HeaderBytes int
}

// ParseOptionHeader decodes one option record's header from the leading
// bytes of data. It returns ErrTruncatedHeader if data is too short to hold
// the (possibly extended) header.
func ParseOptionHeader(data []byte) (OptionHeader, error) {
	if len(data) < OptionHeaderSize {
		return OptionHeader{}, fmt.Errorf("option header: %w", errs.ErrTruncatedHeader)
	}

	engine := endian.GetBigEndianEngine()

	h := OptionHeader{
		Packed: data[0]&0x80 != 0,
		Type:   OptionType(data[0] & 0x7F),
	}

	inline := engine.Uint32(data[0:4]) & 0x00FFFFFF
	if inline != OptionExtendedWords {
		h.Words = inline
		h.HeaderBytes = OptionHeaderSize

		return h, nil
	}

	if len(data) < OptionHeaderSize+WordSize {
		return OptionHeader{}, fmt.Errorf("option header: extended: %w", errs.ErrTruncatedHeader)
	}

	h.Words = engine.Uint32(data[4:8])
	h.HeaderBytes = OptionHeaderSize + WordSize

	return h, nil
}

// TotalBytes returns the option record's total length, including its
// header, in bytes.
func (h OptionHeader) TotalBytes() int {
	return int(h.Words) * WordSize
}
