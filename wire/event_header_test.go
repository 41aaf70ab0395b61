package wire

import (
	"testing"

	"github.com/relaymq/putframe/errs"
	"github.com/stretchr/testify/require"
)

func TestParseEventHeaderRoundTrip(t *testing.T) {
	h := EventHeader{
		Fragmented:       false,
		EventType:        EventTypePut,
		HeaderWords:      EventHeaderMinWords,
		TotalLengthBytes: 128,
	}

	got, err := ParseEventHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestParseEventHeaderFragmentBit(t *testing.T) {
	h := EventHeader{Fragmented: true, EventType: EventTypePut, HeaderWords: EventHeaderMinWords, TotalLengthBytes: 12}
	got, err := ParseEventHeader(h.Bytes())
	require.NoError(t, err)
	require.True(t, got.Fragmented)
}

func TestParseEventHeaderTruncated(t *testing.T) {
	_, err := ParseEventHeader(make([]byte, EventHeaderMinSize-1))
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestParseEventHeaderRejectsShortHeaderWords(t *testing.T) {
	data := make([]byte, EventHeaderMinSize)
	data[1] = EventHeaderMinWords - 1
	_, err := ParseEventHeader(data)
	require.Error(t, err)
}

func TestParseEventHeaderRejectsWrongType(t *testing.T) {
	h := EventHeader{EventType: EventTypePut + 1, HeaderWords: EventHeaderMinWords, TotalLengthBytes: 12}
	_, err := ParseEventHeader(h.Bytes())
	require.Error(t, err)
}

func TestParseEventHeaderRejectsShortTotalLength(t *testing.T) {
	data := make([]byte, EventHeaderMinSize)
	data[0] = EventTypePut
	data[1] = EventHeaderMinWords
	// TotalLengthBytes left at zero, shorter than the declared header.
	_, err := ParseEventHeader(data)
	require.Error(t, err)
}
