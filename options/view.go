package options

import (
	"fmt"

	"github.com/relaymq/putframe/cursor"
	"github.com/relaymq/putframe/errs"
	"github.com/relaymq/putframe/wire"
)

// MaxGroupIDLength bounds the length of a MSG_GROUP_ID value. Extraction
// fails rather than truncating when a declared value exceeds it.
const MaxGroupIDLength = 64

// Entry is one decoded option record: its type and the range of its value
// bytes, aliased into the owning buffer chain.
type Entry struct {
	Type   wire.OptionType
	Packed bool
	Value  cursor.Range
}

// View is a lazy, read-only walk over one message's options area. It is
// built once per message and discarded on the next advance/reset, matching
// the iterator's other lazy caches.
type View struct {
	area    cursor.Range
	entries []Entry
	loaded  bool
}

// NewView returns a View over area, which must be the full options area of
// one message (zero length is a valid, always-empty view).
func NewView(area cursor.Range) *View {
	return &View{area: area}
}

// Entries returns every decoded option record in declaration order, parsing
// the options area on first call and caching the result thereafter.
func (v *View) Entries() ([]Entry, error) {
	if v.loaded {
		return v.entries, nil
	}

	entries, err := parseArea(v.area)
	if err != nil {
		return nil, err
	}

	v.entries = entries
	v.loaded = true

	return v.entries, nil
}

// Find returns the first entry of the given type, or ok=false if none is
// present.
func (v *View) Find(t wire.OptionType) (entry Entry, ok bool, err error) {
	entries, err := v.Entries()
	if err != nil {
		return Entry{}, false, err
	}

	for _, e := range entries {
		if e.Type == t {
			return e, true, nil
		}
	}

	return Entry{}, false, nil
}

// ExtractMsgGroupID copies the MSG_GROUP_ID option's value into dst,
// returning the number of bytes written. It reports ok=false if the option
// is absent, its value exceeds MaxGroupIDLength, or dst is too small.
func (v *View) ExtractMsgGroupID(dst []byte) (n int, ok bool, err error) {
	entry, found, err := v.Find(wire.OptionMsgGroupID)
	if err != nil {
		return 0, false, err
	}

	if !found {
		return 0, false, nil
	}

	length := entry.Value.Len()
	if length > MaxGroupIDLength || length > len(dst) {
		return 0, false, nil
	}

	n = entry.Value.CopyOut(dst[:length])

	return n, true, nil
}

// parseArea walks area record by record, skipping unknown types by their
// declared length and reporting ErrInvalidOption if any record's declared
// length would overrun the area.
func parseArea(area cursor.Range) ([]Entry, error) {
	raw := area.CopyOutNew()

	var entries []Entry
	offset := 0

	for offset < len(raw) {
		remaining := raw[offset:]

		header, err := wire.ParseOptionHeader(remaining)
		if err != nil {
			return nil, fmt.Errorf("options: record at byte %d: %w", offset, errs.ErrInvalidOption)
		}

		total := header.TotalBytes()
		if total < header.HeaderBytes || total > len(remaining) {
			return nil, fmt.Errorf("options: record at byte %d declares %d bytes, %d available: %w",
				offset, total, len(remaining), errs.ErrInvalidOption)
		}

		valueRange, err := area.Chain().Slice(area.Start()+offset+header.HeaderBytes, total-header.HeaderBytes)
		if err != nil {
			return nil, fmt.Errorf("options: record at byte %d: %w", offset, errs.ErrInvalidOption)
		}

		entries = append(entries, Entry{
			Type:   header.Type,
			Packed: header.Packed,
			Value:  valueRange,
		})

		offset += total
	}

	return entries, nil
}
