// Package properties extracts the outer framing of a PUT message's
// properties area (MPA) without interpreting the properties themselves.
//
// The properties area's internal layout (schema-bearing or legacy key/value
// dictionary) is opaque to this module; it is the responsibility of an
// external Decoder. This package reads only enough of the sub-header to
// learn the area's total length, including its own internal padding, and
// whether it uses the legacy (pre-schema) wire format. The iterator uses the
// length to size the properties area; its OnlyOldFormatProperties decision
// comes from the PUT header's SchemaID rather than from this flag.
package properties
