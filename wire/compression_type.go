package wire

// CompressionType identifies the codec applied to a PUT message's
// application data, as carried in PutHeader's 3-bit compression-type field.
type CompressionType uint8

const (
	// CompressionNone means the application data is stored as-is.
	CompressionNone CompressionType = 0
	// CompressionZLIB is the one concrete compression codec the wire
	// format names explicitly (e_ZLIB).
	CompressionZLIB CompressionType = 1
	// CompressionZstd is a reserved compression-type value this module
	// assigns to Zstandard.
	CompressionZstd CompressionType = 2
	// CompressionS2 is a reserved compression-type value this module
	// assigns to S2.
	CompressionS2 CompressionType = 3
	// CompressionLZ4 is a reserved compression-type value this module
	// assigns to LZ4.
	CompressionLZ4 CompressionType = 4
)

// maxCompressionType is the largest value the 3-bit field can carry.
const maxCompressionType = 0x7

// IsValid reports whether c is a compression type this module recognizes.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZLIB, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

// InRange reports whether c fits in the wire format's 3-bit field,
// independent of whether this module recognizes it.
func (c CompressionType) InRange() bool {
	return c <= maxCompressionType
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZLIB:
		return "ZLIB"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
