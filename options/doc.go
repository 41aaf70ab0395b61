// Package options provides a lazy, read-only view over the options area
// (OA) of one PUT message.
//
// An options area is a sequence of variable-length records, each starting
// with an OptionHeader (wire.OptionHeader): a packed bit, a type tag, and a
// word count, optionally extended to a following 32-bit word. A View walks
// these records on demand rather than up front, so constructing one over an
// empty or unused options area costs nothing beyond the bounds it was
// handed.
//
//	0                   1
//	0 1 2 3 4 5 6 7 8 9 0 ...
//	+-+-------------+---------------+
//	|P|   type (7)  |  words (24)   |  record 0
//	+-+-------------+---------------+
//	|          option payload (words*4 - header bytes)     |
//	+-------------------------------------------------------+
//	... next record ...
//
// Unknown option types are skipped by length; only MSG_GROUP_ID is
// interpreted by this package.
package options
