package properties

import (
	"fmt"

	"github.com/relaymq/putframe/endian"
	"github.com/relaymq/putframe/errs"
)

// SubHeaderSize is the fixed-size prefix every properties area begins with,
// legacy or new format alike.
const SubHeaderSize = 4

// SubHeader is the outer framing of a properties area: enough to know how
// many bytes to carve out of application data and forward to an external
// Decoder, without interpreting what's inside.
type SubHeader struct {
	// IsLegacy reports whether the area uses the pre-schema key/value wire
	// format rather than the schema-bearing one.
	IsLegacy bool
	// TotalLength is the properties area's total length in bytes,
	// including this sub-header and any internal padding.
	TotalLength int
}

// PeekSubHeader decodes a SubHeader from the leading bytes of data without
// consuming or validating anything beyond the fixed prefix.
func PeekSubHeader(data []byte) (SubHeader, error) {
	if len(data) < SubHeaderSize {
		return SubHeader{}, fmt.Errorf("properties sub-header: %w", errs.ErrTruncatedProperties)
	}

	engine := endian.GetBigEndianEngine()

	raw := engine.Uint32(data[0:4])

	return SubHeader{
		IsLegacy:    raw&0x80000000 != 0,
		TotalLength: int(raw &^ 0x80000000),
	}, nil
}
