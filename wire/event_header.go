package wire

import (
	"fmt"

	"github.com/relaymq/putframe/endian"
	"github.com/relaymq/putframe/errs"
)

// EventHeader is the fixed-size structure at offset 0 of a PUT event.
type EventHeader struct {
	// Fragmented indicates the event is one fragment of a larger logical
	// event. This module does not reassemble fragments.
	Fragmented bool
	// EventType must equal EventTypePut for this module to iterate it.
	EventType uint8
	// HeaderWords is the header's length in 4-byte words, permitting
	// future extension beyond EventHeaderMinWords.
	HeaderWords uint8
	// TotalLengthBytes is the total byte length of the event, including
	// this header.
	TotalLengthBytes uint32
}

// ParseEventHeader decodes and structurally validates an EventHeader from
// the leading bytes of data.
//
// It validates only that: HeaderWords declares at least EventHeaderMinWords,
// TotalLengthBytes is at least the declared header length, and EventType is
// PUT. It does not validate anything about the bytes beyond the header.
func ParseEventHeader(data []byte) (EventHeader, error) {
	if len(data) < EventHeaderMinSize {
		return EventHeader{}, fmt.Errorf("event header: %w", errs.ErrTruncatedHeader)
	}

	engine := endian.GetBigEndianEngine()

	h := EventHeader{
		Fragmented:  data[0]&0x80 != 0,
		EventType:   data[0] & 0x7F,
		HeaderWords: data[1],
	}
	h.TotalLengthBytes = engine.Uint32(data[4:8])

	if int(h.HeaderWords) < EventHeaderMinWords {
		return EventHeader{}, fmt.Errorf("event header: header words %d below minimum %d: %w",
			h.HeaderWords, EventHeaderMinWords, errs.ErrInvalidLength)
	}

	if h.TotalLengthBytes < uint32(h.HeaderWords)*WordSize {
		return EventHeader{}, fmt.Errorf("event header: total length %d shorter than header: %w",
			h.TotalLengthBytes, errs.ErrInvalidLength)
	}

	if h.EventType != EventTypePut {
		return EventHeader{}, fmt.Errorf("event header: type %d: %w", h.EventType, errs.ErrNotPutEvent)
	}

	return h, nil
}

// HeaderBytes returns the header's declared length in bytes.
func (h EventHeader) HeaderBytes() int {
	return int(h.HeaderWords) * WordSize
}

// Bytes serializes h into a new EventHeaderMinSize-byte slice. Reserved
// bytes are zero-filled. HeaderWords is written as given, but only the
// EventHeaderMinSize-byte fixed prefix is produced; callers that declare a
// longer header append the extra words themselves.
func (h EventHeader) Bytes() []byte {
	b := make([]byte, EventHeaderMinSize)
	engine := endian.GetBigEndianEngine()

	b[0] = h.EventType & 0x7F
	if h.Fragmented {
		b[0] |= 0x80
	}
	b[1] = h.HeaderWords
	engine.PutUint32(b[4:8], h.TotalLengthBytes)

	return b
}
