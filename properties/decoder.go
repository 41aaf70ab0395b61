package properties

// Decoder is the external collaborator that interprets a properties area's
// bytes. This package never implements one;
// iterator.DecodeMessageProperties accepts a Decoder and forwards the raw, already-decompressed bytes to it
// verbatim.
type Decoder interface {
	// Decode parses a complete properties area, including its sub-header,
	// and returns the decoder's own representation of the result.
	Decode(data []byte) (any, error)
}
