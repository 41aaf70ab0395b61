package wire

import (
	"testing"

	"github.com/relaymq/putframe/endian"
	"github.com/relaymq/putframe/errs"
	"github.com/stretchr/testify/require"
)

func TestParseOptionHeaderInline(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	data := make([]byte, OptionHeaderSize)
	engine.PutUint32(data, 5) // words=5, packed=0, type=0
	data[0] = byte(OptionMsgGroupID) | 0x80

	h, err := ParseOptionHeader(data)
	require.NoError(t, err)
	require.True(t, h.Packed)
	require.Equal(t, OptionMsgGroupID, h.Type)
	require.Equal(t, uint32(5), h.Words)
	require.Equal(t, OptionHeaderSize, h.HeaderBytes)
	require.Equal(t, 20, h.TotalBytes())
}

func TestParseOptionHeaderExtended(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	data := make([]byte, OptionHeaderSize+WordSize)
	data[0] = byte(OptionMsgGroupID)
	data[1] = byte(OptionExtendedWords >> 16)
	data[2] = byte(OptionExtendedWords >> 8)
	data[3] = byte(OptionExtendedWords)
	engine.PutUint32(data[4:8], 1000)

	h, err := ParseOptionHeader(data)
	require.NoError(t, err)
	require.False(t, h.Packed)
	require.Equal(t, OptionMsgGroupID, h.Type)
	require.Equal(t, uint32(1000), h.Words)
	require.Equal(t, OptionHeaderSize+WordSize, h.HeaderBytes)
}

func TestParseOptionHeaderTruncatedInline(t *testing.T) {
	_, err := ParseOptionHeader(make([]byte, OptionHeaderSize-1))
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestParseOptionHeaderTruncatedExtended(t *testing.T) {
	data := make([]byte, OptionHeaderSize)
	data[1] = byte(OptionExtendedWords >> 16)
	data[2] = byte(OptionExtendedWords >> 8)
	data[3] = byte(OptionExtendedWords)

	_, err := ParseOptionHeader(data)
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestParseOptionHeaderUnpackedType(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	data := make([]byte, OptionHeaderSize)
	engine.PutUint32(data, 2)
	data[0] = 0x03 // unpacked, type 3

	h, err := ParseOptionHeader(data)
	require.NoError(t, err)
	require.False(t, h.Packed)
	require.Equal(t, OptionType(3), h.Type)
}
