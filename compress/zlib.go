package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor implements wire.CompressionZLIB, the one compression
// algorithm the wire format names explicitly (e_ZLIB).
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor returns a zlib compressor.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// zlibWriterPool pools zlib.Writer instances; Reset avoids reallocating the
// internal deflate tables on every call.
var zlibWriterPool = sync.Pool{
	New: func() any {
		return zlib.NewWriter(io.Discard)
	},
}

// zlibReaderBufPool pools the bytes.Reader used to feed zlib.NewReader,
// which requires an io.Reader rather than a []byte.
var zlibReaderBufPool = sync.Pool{
	New: func() any {
		return new(bytes.Reader)
	},
}

// Compress compresses data using zlib at the default level.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var out bytes.Buffer

	w := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)
	w.Reset(&out)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib: compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib: compress: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress decompresses zlib-compressed data in full.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	br := zlibReaderBufPool.Get().(*bytes.Reader)
	defer zlibReaderBufPool.Put(br)
	br.Reset(data)

	r, err := zlib.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("zlib: decompress: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib: decompress: %w", err)
	}

	return out, nil
}
