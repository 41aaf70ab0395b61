package compress

import (
	"testing"

	"github.com/relaymq/putframe/wire"
	"github.com/stretchr/testify/require"
)

func TestCreateCodecRoundTrip(t *testing.T) {
	types := []wire.CompressionType{
		wire.CompressionNone,
		wire.CompressionZLIB,
		wire.CompressionZstd,
		wire.CompressionS2,
		wire.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			data := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCreateCodecInvalidType(t *testing.T) {
	_, err := CreateCodec(wire.CompressionType(7), "test")
	require.Error(t, err)
}

func TestGetCodecReturnsSharedInstance(t *testing.T) {
	a, err := GetCodec(wire.CompressionZstd)
	require.NoError(t, err)

	b, err := GetCodec(wire.CompressionZstd)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestGetCodecUnsupportedType(t *testing.T) {
	_, err := GetCodec(wire.CompressionType(7))
	require.Error(t, err)
}

func TestNoOpCompressorPassesThrough(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("passthrough")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestCompressEmptyInputRoundTrips(t *testing.T) {
	for _, codec := range []Codec{
		NewZlibCompressor(),
		NewZstdCompressor(),
		NewS2Compressor(),
		NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}
