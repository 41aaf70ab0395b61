package iterator

import (
	"fmt"

	"github.com/relaymq/putframe/compress"
	"github.com/relaymq/putframe/cursor"
	"github.com/relaymq/putframe/errs"
	ipo "github.com/relaymq/putframe/internal/options"
	"github.com/relaymq/putframe/internal/pool"
	"github.com/relaymq/putframe/options"
	"github.com/relaymq/putframe/wire"
)

// PutMessageIterator walks the messages packed into one PUT event. See the
// package doc for its state machine and usage pattern.
type PutMessageIterator struct {
	stage      compress.Stage
	basePolicy compress.Policy // the policy passed to NewIterator; Reset without an override restores this

	chain       *cursor.Chain
	cur         *cursor.Cursor // positioned at the current message's PutHeader
	eventHeader wire.EventHeader
	state       State
	err         error

	advanceLength int // bytes cur steps forward by on the next Advance

	header      wire.PutHeader
	optionsPos  int
	optionsSize int
	ad          applicationData
	ownedBuf    *pool.ByteBuffer

	optionsView *options.View

	propsSizeLoaded bool
	propsSize       int
}

// NewIterator returns an iterator that decompresses according to policy.
// Reset must be called before Advance. policy also becomes the default a
// later Reset falls back to when called without the force-decompress
// override.
func NewIterator(policy compress.Policy, opts ...Option) (*PutMessageIterator, error) {
	it := &PutMessageIterator{stage: compress.NewStage(policy), basePolicy: policy}

	if err := ipo.Apply(it, opts...); err != nil {
		return nil, err
	}

	return it, nil
}

// Reset positions the iterator at the start of a new PUT event. chain must
// contain at least eventHeader.TotalLengthBytes bytes; it may be longer,
// e.g. when it holds more than one event back to back.
//
// forceDecompressAlways, when true, decompresses every compressed message
// in this event regardless of the policy given to NewIterator, supporting
// brokers that need to force decompression for one event (for example,
// while relaying to a consumer that predates a newer compression scheme).
// When false, the policy from NewIterator governs this event as usual.
// Either way the override applies only to this Reset; a later Reset without
// it reverts to the constructor policy.
func (it *PutMessageIterator) Reset(chain *cursor.Chain, eventHeader wire.EventHeader, forceDecompressAlways bool) error {
	if chain.Len() < int(eventHeader.TotalLengthBytes) {
		it.state = StateInvalid

		return fmt.Errorf("iterator: reset: blob has %d bytes, event declares %d: %w",
			chain.Len(), eventHeader.TotalLengthBytes, errs.ErrBlobTooShort)
	}

	it.releaseOwnedBuffer()

	cur := cursor.New(chain)
	if err := cur.Advance(eventHeader.HeaderBytes()); err != nil {
		it.state = StateInvalid

		return fmt.Errorf("iterator: reset: %w", err)
	}

	if forceDecompressAlways {
		it.stage.Policy = compress.PolicyAlways
	} else {
		it.stage.Policy = it.basePolicy
	}

	it.chain = chain
	it.cur = cur
	it.eventHeader = eventHeader
	it.advanceLength = 0
	it.state = StateReady
	it.err = nil
	it.clearMessageCache()

	return nil
}

// RebindTo repositions src's already-parsed cached state onto chain, a
// different buffer holding byte-for-byte identical content. chain's total
// length must equal the chain src was last Reset or Advanced against.
func (it *PutMessageIterator) RebindTo(chain *cursor.Chain, src *PutMessageIterator) error {
	if chain.Len() != src.chain.Len() {
		return fmt.Errorf("iterator: rebind: new chain has %d bytes, source has %d: %w",
			chain.Len(), src.chain.Len(), errs.ErrRebindLengthMismatch)
	}

	it.releaseOwnedBuffer()

	*it = *src
	it.chain = chain
	it.optionsView = nil // rebuilt lazily against the new chain

	cur := cursor.New(chain)
	if err := cur.Advance(src.cur.Offset()); err != nil {
		return fmt.Errorf("iterator: rebind: %w", err)
	}
	it.cur = cur

	if it.state == StateOnMessage {
		rebound, err := it.ad.rebind(chain)
		if err != nil {
			return fmt.Errorf("iterator: rebind: application data: %w", err)
		}

		it.ad = rebound
	}

	return nil
}

// Clear returns the iterator to its default-constructed, invalid state.
func (it *PutMessageIterator) Clear() {
	it.releaseOwnedBuffer()
	it.chain = nil
	it.cur = nil
	it.eventHeader = wire.EventHeader{}
	it.state = StateInvalid
	it.err = nil
	it.advanceLength = 0
	it.clearMessageCache()
}

// IsValid reports whether the iterator is Ready or OnMessage.
func (it *PutMessageIterator) IsValid() bool {
	return it.state != StateInvalid
}

// State returns the iterator's current lifecycle state.
func (it *PutMessageIterator) State() State {
	return it.state
}

func (it *PutMessageIterator) clearMessageCache() {
	it.header = wire.PutHeader{}
	it.optionsPos = 0
	it.optionsSize = 0
	it.ad = applicationData{}
	it.optionsView = nil
	it.propsSizeLoaded = false
	it.propsSize = 0
}

func (it *PutMessageIterator) releaseOwnedBuffer() {
	if it.ownedBuf != nil {
		pool.PutApplicationDataBuffer(it.ownedBuf)
		it.ownedBuf = nil
	}
}

func (it *PutMessageIterator) fail(err error) (int, error) {
	it.state = StateInvalid
	it.err = err
	it.releaseOwnedBuffer()

	return 0, err
}

// Advance decodes the next message. It returns 1 and moves the iterator to
// StateOnMessage when a message was found, 0 with a nil error when the
// event is exhausted, or 0 with a non-nil error (and the iterator becomes
// Invalid) when the event is corrupt.
func (it *PutMessageIterator) Advance() (int, error) {
	if it.state == StateInvalid {
		return 0, it.err
	}

	if it.advanceLength > 0 {
		if err := it.cur.Advance(it.advanceLength); err != nil {
			return it.fail(fmt.Errorf("iterator: advance: stepping past previous message: %w", err))
		}
		it.advanceLength = 0
	}

	newPos := it.cur.Offset()
	totalLen := int(it.eventHeader.TotalLengthBytes)

	switch {
	case newPos == totalLen:
		it.state = StateInvalid
		it.err = nil
		it.releaseOwnedBuffer()

		return 0, nil
	case newPos > totalLen:
		// The previous message's declared length ran past this event's own
		// TotalLengthBytes even though the chain itself had room for it
		// (the chain may hold more than one event back to back). Invariant
		// 1 (message lengths plus the event header sum to the event's
		// total length) is broken; this is corruption, not exhaustion.
		return it.fail(fmt.Errorf("iterator: advance: previous message overran event length %d at offset %d: %w",
			totalLen, newPos, errs.ErrInvalidLength))
	}

	headerBuf := make([]byte, wire.PutHeaderMinSize)
	if err := it.cur.ReadInto(headerBuf); err != nil {
		return it.fail(fmt.Errorf("iterator: advance: %w", errs.ErrTruncatedHeader))
	}

	ph, err := wire.ParsePutHeader(headerBuf)
	if err != nil {
		return it.fail(fmt.Errorf("iterator: advance: %w", err))
	}

	headerBytes := ph.HeaderBytes()
	totalBytes := ph.TotalMessageBytes()

	if newPos+totalBytes > it.chain.Len() {
		return it.fail(fmt.Errorf("iterator: advance: message declares %d total bytes, %d remain: %w",
			totalBytes, it.chain.Len()-newPos, errs.ErrTruncatedHeader))
	}

	optionsPos := newPos + headerBytes
	optionsSize := ph.OptionsBytes()

	var padByte [1]byte
	if err := it.chain.ReadInto(padByte[:], newPos+totalBytes-1); err != nil {
		return it.fail(fmt.Errorf("iterator: advance: %w", errs.ErrTruncatedHeader))
	}

	padding := int(padByte[0])
	if padding < 1 || padding > 4 {
		return it.fail(fmt.Errorf("iterator: advance: padding byte %d not in [1,4]: %w", padding, errs.ErrInvalidPadding))
	}

	rawADPos := optionsPos + optionsSize
	rawADSize := totalBytes - headerBytes - optionsSize - padding
	if rawADSize < 0 {
		return it.fail(fmt.Errorf("iterator: advance: negative application data size: %w", errs.ErrInvalidLength))
	}

	rawADRange, err := it.chain.Slice(rawADPos, rawADSize)
	if err != nil {
		return it.fail(fmt.Errorf("iterator: advance: application data range: %w", err))
	}

	it.releaseOwnedBuffer()

	it.header = ph

	if ph.CompressionType == wire.CompressionNone {
		// Nothing for the decompression stage to decide; keep this the
		// common, truly zero-copy path instead of paying for a CopyOutNew
		// that would only be discarded.
		it.ad = aliasedApplicationData(rawADRange)
	} else {
		// hasLegacyProperties is decided from the header's SchemaID rather
		// than by peeking application-data bytes: once compression covers
		// the whole application data, a pre-decompression peek of the
		// properties sub-header would read compressed bytes, not the
		// sub-header itself. A zero SchemaID means the message carries
		// pre-schema, legacy properties, matching how schema-bearing
		// messages always set one.
		hasLegacyProperties := ph.HasMessageProperties() && ph.SchemaID == 0

		rawBytes := rawADRange.CopyOutNew()

		result, err := it.stage.Apply(ph.CompressionType, rawBytes, hasLegacyProperties)
		if err != nil {
			return it.fail(fmt.Errorf("iterator: advance: %w", err))
		}

		if result.Owned {
			buf := pool.GetApplicationDataBuffer()
			buf.MustWrite(result.Data)
			it.ownedBuf = buf
			it.ad = ownedApplicationData(buf.Bytes())
		} else {
			it.ad = aliasedApplicationData(rawADRange)
		}

		if result.CompressionCleared {
			it.header.CompressionType = wire.CompressionNone
		}
	}

	it.optionsPos = optionsPos
	it.optionsSize = optionsSize
	it.optionsView = nil
	it.propsSizeLoaded = false
	it.propsSize = 0

	it.advanceLength = totalBytes
	it.state = StateOnMessage
	it.err = nil

	return 1, nil
}
