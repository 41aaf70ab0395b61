package iterator

import "github.com/relaymq/putframe/cursor"

// applicationData is one message's application data (properties concatenated
// with payload), in whichever form the decompression stage left it: an
// alias into the buffer chain, or an owned, pooled buffer holding freshly
// decompressed bytes.
type applicationData struct {
	aliased cursor.Range
	owned   []byte
	isOwned bool
}

func aliasedApplicationData(r cursor.Range) applicationData {
	return applicationData{aliased: r}
}

func ownedApplicationData(data []byte) applicationData {
	return applicationData{owned: data, isOwned: true}
}

func (ad applicationData) Len() int {
	if ad.isOwned {
		return len(ad.owned)
	}

	return ad.aliased.Len()
}

// head returns the leading n bytes (clamped to Len) without disturbing the
// underlying data: a subslice of the owned buffer, or a fresh copy read from
// the chain. Used to peek the properties sub-header without materializing
// the whole application data.
func (ad applicationData) head(n int) ([]byte, error) {
	if n > ad.Len() {
		n = ad.Len()
	}

	if ad.isOwned {
		return ad.owned[:n], nil
	}

	buf := make([]byte, n)
	if err := ad.aliased.Chain().ReadInto(buf, ad.aliased.Start()); err != nil {
		return nil, err
	}

	return buf, nil
}

// copyRange copies ad's bytes in [start, start+length) into dst.
func (ad applicationData) copyRange(dst []byte, start, length int) error {
	if ad.isOwned {
		copy(dst, ad.owned[start:start+length])
		return nil
	}

	return ad.aliased.Chain().ReadInto(dst[:length], ad.aliased.Start()+start)
}

// position returns the absolute chain position of ad's first byte. It is
// only meaningful when ad is not owned.
func (ad applicationData) position() (cursor.Position, error) {
	return ad.aliased.Chain().PositionAt(ad.aliased.Start())
}

// rebind rebuilds an aliased range against a new chain covering identical
// content at the same absolute offsets. Owned data is untouched: it was
// already fully materialized and does not depend on the chain.
func (ad applicationData) rebind(chain *cursor.Chain) (applicationData, error) {
	if ad.isOwned {
		return ad, nil
	}

	r, err := chain.Slice(ad.aliased.Start(), ad.aliased.Len())
	if err != nil {
		return applicationData{}, err
	}

	return aliasedApplicationData(r), nil
}
