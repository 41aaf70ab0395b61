package iterator

import ipo "github.com/relaymq/putframe/internal/options"

// Option configures a PutMessageIterator at construction time.
type Option = ipo.Option[*PutMessageIterator]

// WithMaxDecompressedSize overrides compress.DefaultMaxDecompressedSize for
// this iterator's decompression stage.
func WithMaxDecompressedSize(n int) Option {
	return ipo.NoError[*PutMessageIterator](func(it *PutMessageIterator) {
		it.stage.MaxDecompressedSize = n
	})
}
