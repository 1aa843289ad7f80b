// Package value implements the typed value model shared by all tags.
//
// # Data Types
//
// DataType is a closed enumeration of the 13 implemented Sparkplug 3 metric
// types: eight integer widths, float, double, boolean, three string kinds
// (string, text, UUID), a millisecond-epoch datetime carried as uint64, and
// an opaque byte buffer. Array, dataset and template types are deliberately
// not implemented.
//
// # BasicValue
//
// BasicValue is a timestamped, nullable snapshot of one typed value. The
// payload slot that is meaningful is selected by the Type discriminant;
// typed accessors consult the discriminant so a mismatched slot can never
// be read. A Timestamp of 0 is the "never read" sentinel.
//
// String kinds own a fixed-capacity byte buffer sized at allocation time
// (capacity + 1, terminator included); the Bytes kind owns a Buffer with
// separately tracked allocated and written lengths. All copies into these
// payloads are bounded by the destination capacity and can never overflow.
package value
