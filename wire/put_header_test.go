package wire

import (
	"testing"

	"github.com/relaymq/putframe/errs"
	"github.com/stretchr/testify/require"
)

func sampleGUID() [16]byte {
	var g [16]byte
	for i := range g {
		g[i] = byte(i + 1)
	}

	return g
}

func TestParsePutHeaderRoundTrip(t *testing.T) {
	h := PutHeader{
		Flags:             FlagMessageProperties | FlagOptions,
		HeaderWords:       PutHeaderMinWords,
		OptionsWords:      3,
		CompressionType:   CompressionZLIB,
		TotalMessageWords: 40,
		QueueID:           7,
		MessageGUID:       sampleGUID(),
		CRC32C:            0xDEADBEEF,
		SchemaID:          9,
	}

	got, err := ParsePutHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.True(t, got.HasMessageProperties())
	require.True(t, got.HasOptions())
}

func TestParsePutHeaderNoFlags(t *testing.T) {
	h := PutHeader{HeaderWords: PutHeaderMinWords, TotalMessageWords: PutHeaderMinWords}
	got, err := ParsePutHeader(h.Bytes())
	require.NoError(t, err)
	require.False(t, got.HasMessageProperties())
	require.False(t, got.HasOptions())
}

func TestParsePutHeaderTruncated(t *testing.T) {
	_, err := ParsePutHeader(make([]byte, PutHeaderMinSize-1))
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestParsePutHeaderRejectsHeaderWordsBelowMinimum(t *testing.T) {
	h := PutHeader{HeaderWords: PutHeaderMinWords - 1, TotalMessageWords: PutHeaderMinWords}
	_, err := ParsePutHeader(h.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidLength)
}

func TestParsePutHeaderRejectsTotalWordsShorterThanHeader(t *testing.T) {
	h := PutHeader{HeaderWords: PutHeaderMinWords, TotalMessageWords: PutHeaderMinWords - 1}
	_, err := ParsePutHeader(h.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidLength)
}

func TestParsePutHeaderRejectsOptionsOverrunningMessage(t *testing.T) {
	h := PutHeader{
		HeaderWords:       PutHeaderMinWords,
		OptionsWords:      100,
		TotalMessageWords: PutHeaderMinWords + 1,
	}
	_, err := ParsePutHeader(h.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidLength)
}

func TestParsePutHeaderCompressionTypeUsesTopThreeBits(t *testing.T) {
	data := PutHeader{HeaderWords: PutHeaderMinWords, TotalMessageWords: PutHeaderMinWords}.Bytes()
	data[5] = 0xFF // low 5 bits are reserved and must not leak into CompressionType
	got, err := ParsePutHeader(data)
	require.NoError(t, err)
	require.Equal(t, CompressionType(7), got.CompressionType)
}

func TestOptionsWordsSplitAcrossWords(t *testing.T) {
	h := PutHeader{
		HeaderWords:       PutHeaderMinWords,
		OptionsWords:      0x00ABCDEF & 0xFFFFFF,
		TotalMessageWords: PutHeaderMinWords + 0xABCDEF,
	}
	got, err := ParsePutHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h.OptionsWords, got.OptionsWords)
}
