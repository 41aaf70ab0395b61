package compress

// ZstdCompressor implements wire.CompressionZstd. Compress/Decompress live
// in zstd_pure.go (default, pure-Go) or zstd_cgo.go (cgo-accelerated,
// disabled by build tag).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor returns a Zstd compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
