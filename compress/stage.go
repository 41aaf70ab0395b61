package compress

import (
	"fmt"

	"github.com/relaymq/putframe/errs"
	"github.com/relaymq/putframe/wire"
)

// Policy selects when the decompression stage actually decompresses.
type Policy uint8

const (
	// PolicyNone never decompresses; application data aliases the raw
	// on-wire range verbatim.
	PolicyNone Policy = iota
	// PolicyAlways decompresses every message whose compression type is
	// not wire.CompressionNone.
	PolicyAlways
	// PolicyOnlyOldFormatProperties decompresses only messages that carry
	// message properties in the legacy (pre-schema) format, supporting
	// in-place rollout of a newer, wider compression scope.
	PolicyOnlyOldFormatProperties
)

func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyAlways:
		return "always"
	case PolicyOnlyOldFormatProperties:
		return "only-old-format-properties"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// DefaultMaxDecompressedSize bounds a single message's decompressed
// application data. The limit is checked against the codec's full output,
// so an oversized message is rejected after it has been decompressed.
const DefaultMaxDecompressedSize = 64 * 1024 * 1024

// Result is the outcome of applying the decompression stage to one
// message's raw application data.
type Result struct {
	// Data is the application data to expose to callers: either the raw
	// slice (aliased) or a freshly decompressed buffer (owned).
	Data []byte
	// Owned reports whether Data was freshly allocated by this stage and
	// should be returned to a pool when the iterator advances past it.
	Owned bool
	// CompressionCleared reports whether the exposed PutHeader should
	// report CompressionNone even though the on-wire header still names a
	// real codec.
	CompressionCleared bool
}

// Stage implements the decompression stage (C4): given a message's
// compression type, raw application data, and whether it carries legacy
// message properties, it decides whether to decompress and produces a
// Result.
type Stage struct {
	Policy              Policy
	MaxDecompressedSize int
}

// NewStage returns a Stage with the given policy and
// DefaultMaxDecompressedSize.
func NewStage(policy Policy) Stage {
	return Stage{Policy: policy, MaxDecompressedSize: DefaultMaxDecompressedSize}
}

// Apply runs the stage over one message. hasLegacyProperties reports whether
// the message carries message properties in the legacy (pre-schema) format;
// PolicyOnlyOldFormatProperties decompresses only when it is true. The
// iterator derives it from the PUT header (MESSAGE_PROPERTIES set and a zero
// SchemaID), not from the properties sub-header.
func (s Stage) Apply(compressionType wire.CompressionType, raw []byte, hasLegacyProperties bool) (Result, error) {
	if !s.shouldDecompress(compressionType, hasLegacyProperties) {
		return Result{Data: raw, Owned: false, CompressionCleared: false}, nil
	}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return Result{}, fmt.Errorf("compress: stage: %w", errs.ErrUnsupportedCompression)
	}

	decompressed, err := codec.Decompress(raw)
	if err != nil {
		return Result{}, fmt.Errorf("compress: stage: %w: %v", errs.ErrDecompressFailed, err)
	}

	max := s.MaxDecompressedSize
	if max <= 0 {
		max = DefaultMaxDecompressedSize
	}

	if len(decompressed) > max {
		return Result{}, fmt.Errorf("compress: stage: decompressed %d bytes exceeds limit %d: %w: %w",
			len(decompressed), max, errs.ErrDecompressFailed, errs.ErrDecompressedTooLarge)
	}

	return Result{Data: decompressed, Owned: true, CompressionCleared: true}, nil
}

func (s Stage) shouldDecompress(compressionType wire.CompressionType, hasLegacyProperties bool) bool {
	if compressionType == wire.CompressionNone {
		return false
	}

	switch s.Policy {
	case PolicyAlways:
		return true
	case PolicyOnlyOldFormatProperties:
		return hasLegacyProperties
	default:
		return false
	}
}
