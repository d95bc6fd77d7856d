// Package stream implements the bit-level wire format this module is
// built around: a Writer that packs values into a dense, LSB-first bit
// sequence behind a 4-byte bit-length header and an optional CRC-32
// trailer, and a Reader that is its exact inverse.
//
// The format is not self-describing. A Reader must be driven with the
// same sequence of operations, widths, and range-compressor parameters
// the Writer used to produce the bytes; nothing in the wire format lets
// a mismatch be detected except by accident (a wrong EncodingError or a
// TooShort further down the stream).
//
// Neither type is safe for concurrent use, and neither is meant to be
// copied once in use: treat a *Writer and *Reader as move-only handles
// to the bytes they own or observe.
package stream
