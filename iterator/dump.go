package iterator

import (
	"encoding/hex"
	"io"

	"github.com/relaymq/putframe/errs"
)

// DumpBlob writes a hex dump of the first n bytes of the iterator's
// underlying buffer chain to w, for diagnosing a corrupt event after
// Advance returns an error. n <= 0 or larger than the chain dumps the
// whole chain.
func (it *PutMessageIterator) DumpBlob(w io.Writer, n int) error {
	if it.chain == nil {
		return errs.ErrInvalidIterator
	}

	if n <= 0 || n > it.chain.Len() {
		n = it.chain.Len()
	}

	buf := make([]byte, n)
	if err := it.chain.ReadInto(buf, 0); err != nil {
		return err
	}

	dumper := hex.Dumper(w)
	defer dumper.Close()

	_, err := dumper.Write(buf)

	return err
}
