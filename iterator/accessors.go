package iterator

import (
	"fmt"

	"github.com/relaymq/putframe/cursor"
	"github.com/relaymq/putframe/errs"
	"github.com/relaymq/putframe/options"
	"github.com/relaymq/putframe/properties"
	"github.com/relaymq/putframe/wire"
)

// Header returns a copy of the current message's header. If the
// decompression stage decompressed this message's application data, the
// copy reports CompressionNone even though the on-wire header named a real
// codec.
func (it *PutMessageIterator) Header() (wire.PutHeader, error) {
	if it.state != StateOnMessage {
		return wire.PutHeader{}, errs.ErrInvalidIterator
	}

	return it.header, nil
}

// HasMessageProperties reports whether the current message carries a
// properties area.
func (it *PutMessageIterator) HasMessageProperties() (bool, error) {
	if it.state != StateOnMessage {
		return false, errs.ErrInvalidIterator
	}

	return it.header.HasMessageProperties(), nil
}

// ApplicationDataSize returns the current message's application data
// length: properties plus payload, after any decompression.
func (it *PutMessageIterator) ApplicationDataSize() (int, error) {
	if it.state != StateOnMessage {
		return 0, errs.ErrInvalidIterator
	}

	return it.ad.Len(), nil
}

// LoadApplicationData copies the current message's application data into
// dst, which must have length >= ApplicationDataSize.
func (it *PutMessageIterator) LoadApplicationData(dst []byte) error {
	if it.state != StateOnMessage {
		return errs.ErrInvalidIterator
	}

	return it.ad.copyRange(dst, 0, it.ad.Len())
}

// LoadApplicationDataPosition returns the application data's position
// within the underlying buffer chain. It only succeeds when the message was
// not decompressed; decompressed data lives in a pooled buffer outside the
// chain, so callers needing zero-copy access must check the error.
func (it *PutMessageIterator) LoadApplicationDataPosition() (cursor.Position, error) {
	if it.state != StateOnMessage {
		return cursor.Position{}, errs.ErrInvalidIterator
	}

	if it.ad.isOwned {
		return cursor.Position{}, fmt.Errorf("iterator: application data was decompressed into an owned buffer")
	}

	return it.ad.position()
}

// MessagePropertiesSize returns the size, in bytes, of the properties area
// at the front of the application data, including its sub-header. It is 0
// when the message has no MESSAGE_PROPERTIES flag, without inspecting the
// application data. The size is measured on the post-decompression bytes
// and is cached after the first call.
func (it *PutMessageIterator) MessagePropertiesSize() (int, error) {
	if it.state != StateOnMessage {
		return 0, errs.ErrInvalidIterator
	}

	if !it.header.HasMessageProperties() {
		return 0, nil
	}

	if it.propsSizeLoaded {
		return it.propsSize, nil
	}

	head, err := it.ad.head(properties.SubHeaderSize)
	if err != nil {
		return 0, fmt.Errorf("iterator: message properties size: %w", err)
	}

	sub, err := properties.PeekSubHeader(head)
	if err != nil {
		return 0, fmt.Errorf("iterator: message properties size: %w", err)
	}

	it.propsSize = sub.TotalLength
	it.propsSizeLoaded = true

	return it.propsSize, nil
}

// LoadMessagePropertiesPosition is the properties-area analogue of
// LoadApplicationDataPosition: it succeeds only when the message was not
// decompressed.
func (it *PutMessageIterator) LoadMessagePropertiesPosition() (cursor.Position, error) {
	return it.LoadApplicationDataPosition()
}

// LoadMessageProperties copies the raw properties-area bytes, including the
// sub-header, into dst.
func (it *PutMessageIterator) LoadMessageProperties(dst []byte) error {
	size, err := it.MessagePropertiesSize()
	if err != nil {
		return err
	}

	return it.ad.copyRange(dst, 0, size)
}

// DecodeMessageProperties copies the raw properties-area bytes and forwards
// them to decoder, returning whatever representation the decoder produces.
func (it *PutMessageIterator) DecodeMessageProperties(decoder properties.Decoder) (any, error) {
	size, err := it.MessagePropertiesSize()
	if err != nil {
		return nil, err
	}

	raw := make([]byte, size)
	if err := it.ad.copyRange(raw, 0, size); err != nil {
		return nil, fmt.Errorf("iterator: decode message properties: %w", err)
	}

	return decoder.Decode(raw)
}

// MessagePayloadSize returns the payload's size: the application data minus
// the properties area.
func (it *PutMessageIterator) MessagePayloadSize() (int, error) {
	propsSize, err := it.MessagePropertiesSize()
	if err != nil {
		return 0, err
	}

	return it.ad.Len() - propsSize, nil
}

// LoadMessagePayload copies the payload bytes into dst.
func (it *PutMessageIterator) LoadMessagePayload(dst []byte) error {
	propsSize, err := it.MessagePropertiesSize()
	if err != nil {
		return err
	}

	payloadSize := it.ad.Len() - propsSize

	return it.ad.copyRange(dst, propsSize, payloadSize)
}

// OptionsSize returns the current message's options area length in bytes.
func (it *PutMessageIterator) OptionsSize() (int, error) {
	if it.state != StateOnMessage {
		return 0, errs.ErrInvalidIterator
	}

	return it.optionsSize, nil
}

// HasOptions reports whether the current message carries an options area.
func (it *PutMessageIterator) HasOptions() (bool, error) {
	if it.state != StateOnMessage {
		return false, errs.ErrInvalidIterator
	}

	return it.optionsSize > 0, nil
}

// LoadOptions copies the raw options-area bytes into dst.
func (it *PutMessageIterator) LoadOptions(dst []byte) error {
	if it.state != StateOnMessage {
		return errs.ErrInvalidIterator
	}

	return it.chain.ReadInto(dst[:it.optionsSize], it.optionsPos)
}

// LoadOptionsView returns a parsed view over the current message's options
// area, building and caching it on first call.
func (it *PutMessageIterator) LoadOptionsView() (*options.View, error) {
	if it.state != StateOnMessage {
		return nil, errs.ErrInvalidIterator
	}

	if it.optionsView == nil {
		area, err := it.chain.Slice(it.optionsPos, it.optionsSize)
		if err != nil {
			return nil, fmt.Errorf("iterator: options view: %w", err)
		}

		it.optionsView = options.NewView(area)
	}

	return it.optionsView, nil
}

// HasMsgGroupId reports whether the current message carries a MSG_GROUP_ID
// option.
func (it *PutMessageIterator) HasMsgGroupId() (bool, error) {
	view, err := it.LoadOptionsView()
	if err != nil {
		return false, err
	}

	_, ok, err := view.Find(wire.OptionMsgGroupID)

	return ok, err
}

// ExtractMsgGroupID copies the MSG_GROUP_ID option's value into dst. See
// options.View.ExtractMsgGroupID for its exact semantics.
func (it *PutMessageIterator) ExtractMsgGroupID(dst []byte) (int, bool, error) {
	view, err := it.LoadOptionsView()
	if err != nil {
		return 0, false, err
	}

	return view.ExtractMsgGroupID(dst)
}
