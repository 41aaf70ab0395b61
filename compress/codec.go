package compress

import (
	"fmt"

	"github.com/relaymq/putframe/wire"
)

// Compressor compresses a byte slice. Only test fixtures and tooling that
// build synthetic PUT events need this direction; the iterator itself only
// ever decompresses.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result. data is
	// not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. This is the direction the
// decompression stage (Stage) exercises against application data read off
// the wire.
//
// Thread Safety: Decompressor implementations must be safe for concurrent
// use across goroutines; an individual iterator instance using one is still
// subject to its own single-goroutine-at-a-time rule.
type Decompressor interface {
	// Decompress decompresses data and returns a newly allocated result. It
	// returns an error if data is corrupted or was not compressed with the
	// matching algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec constructs a fresh Codec for the given wire compression type.
// target names the caller for error messages.
func CreateCodec(compressionType wire.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case wire.CompressionNone:
		return NewNoOpCompressor(), nil
	case wire.CompressionZLIB:
		return NewZlibCompressor(), nil
	case wire.CompressionZstd:
		return NewZstdCompressor(), nil
	case wire.CompressionS2:
		return NewS2Compressor(), nil
	case wire.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[wire.CompressionType]Codec{
	wire.CompressionNone: NewNoOpCompressor(),
	wire.CompressionZLIB: NewZlibCompressor(),
	wire.CompressionZstd: NewZstdCompressor(),
	wire.CompressionS2:   NewS2Compressor(),
	wire.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared, built-in Codec for the given compression
// type.
func GetCodec(compressionType wire.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
