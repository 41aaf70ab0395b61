// Package wire defines the fixed-size binary structures of the PUT-event
// wire format: the event header, the per-message PUT header, its flag
// bitfield, the compression-type enum, and option records.
//
// All multi-byte integers are big-endian. A word is 4 bytes; every length
// field in this package is expressed in words unless its name says
// otherwise.
//
// # Event layout
//
//	┌─────────────────────────────────────────────────────────┐
//	│ EventHeader (EventHeaderMinSize bytes, fixed)            │
//	├─────────────────────────────────────────────────────────┤
//	│ PUT message 0                                            │
//	│  ┌───────────────────────────────────────────────────┐  │
//	│  │ PutHeader (PutHeaderMinSize bytes, fixed)          │  │
//	│  ├───────────────────────────────────────────────────┤  │
//	│  │ Options area (OptionsWords*4 bytes, optional)      │  │
//	│  ├───────────────────────────────────────────────────┤  │
//	│  │ Message properties (opaque, optional)              │  │
//	│  ├───────────────────────────────────────────────────┤  │
//	│  │ Payload (opaque, optionally compressed)            │  │
//	│  ├───────────────────────────────────────────────────┤  │
//	│  │ Padding (1-4 bytes, last byte = pad count)         │  │
//	│  └───────────────────────────────────────────────────┘  │
//	│ PUT message 1 ...                                        │
//	└─────────────────────────────────────────────────────────┘
//
// # PutHeader layout (PutHeaderMinSize = 40 bytes, PutHeaderMinWords = 10)
//
//	Bytes  | Field              | Description
//	-------|--------------------|---------------------------------------
//	0      | Flags              | MessageProperties/Options/Unused bits
//	1      | HeaderWords        | header length in 4-byte words
//	2-3    | OptionsWords (hi)  | high 16 bits of a 24-bit word count
//	4      | OptionsWords (lo)  | low 8 bits of the 24-bit word count
//	5      | CompressionType    | 3-bit enum, high bits of the byte
//	6-7    | reserved           |
//	8-11   | TotalMessageWords  | total message length in 4-byte words
//	12-15  | QueueID            |
//	16-31  | MessageGUID        | 16 opaque bytes
//	32-35  | CRC32C             | Castagnoli CRC of application data
//	36-37  | SchemaID           |
//	38-39  | reserved           |
//
// This package only validates structural bounds (§4.2 of the governing
// design): that declared lengths fit within what was actually received and
// that the event header's type field is PUT. It never validates semantic
// correctness of flag combinations beyond range checks — that is layered on
// by the iterator and options packages.
package wire
