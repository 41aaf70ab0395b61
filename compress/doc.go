// Package compress provides the decompression codecs used by the
// decompression stage (Stage, in this package) to expand a PUT message's
// application data.
//
// # Algorithms
//
//   - None (wire.CompressionNone): application data is already plaintext.
//   - ZLIB (wire.CompressionZLIB): the only algorithm the wire format names
//     explicitly.
//   - Zstd, S2, LZ4 (wire.CompressionZstd/S2/LZ4): reserved compression-type
//     values wired to real codecs so producers using a broker build with
//     these algorithms enabled can still be iterated.
//
// # Architecture
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Compressor is also provided so tests can build compressed fixtures
// in-process, but the iterator only ever calls Decompress.
//
// # Codec selection
//
// CreateCodec and GetCodec both map a wire.CompressionType to a Codec;
// GetCodec returns a shared built-in instance, CreateCodec always allocates
// a fresh one. Built-in codecs are safe for concurrent use across
// goroutines.
//
// # Zstd backend selection
//
// ZstdCompressor's Compress/Decompress are implemented twice: zstd_pure.go
// (pure Go, klauspost/compress/zstd, selected by default) and zstd_cgo.go
// (cgo-accelerated, github.com/valyala/gozstd, gated behind an
// unsatisfiable build tag and kept only as a documented alternative
// backend).
package compress
