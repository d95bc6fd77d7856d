package stream

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// headerBits is the size, in bits, of the reserved length-prefix header
// written at offset 0 of every stream.
const headerBits = 32

// Writer accumulates bits into a growable byte buffer. The zero value is
// not usable; construct one with NewWriter. A Writer is a move-only value
// in spirit: it must not be mutated from more than one goroutine, and
// copying a Writer after it has been written to aliases the same backing
// array a second caller could mutate out from under the first.
type Writer struct {
	bytes       []byte
	endBitIndex int
}

// NewWriter returns a writer in the initial state: four reserved zero
// bytes for the length header and endBitIndex == 32. reserveHint
// preallocates capacity for roughly that many additional payload bytes
// plus the header and an optional CRC trailer; it has no effect on
// observable state.
func NewWriter(reserveHint int) *Writer {
	if reserveHint < 0 {
		reserveHint = 0
	}
	buf := make([]byte, headerBits/8, headerBits/8+reserveHint+4)
	return &Writer{bytes: buf, endBitIndex: headerBits}
}

// Reset returns the writer to its initial state, reusing (or re-reserving)
// the underlying capacity.
func (w *Writer) Reset(reserveHint int) {
	if reserveHint < 0 {
		reserveHint = 0
	}
	need := headerBits/8 + reserveHint + 4
	if cap(w.bytes) < need {
		w.bytes = make([]byte, headerBits/8, need)
	} else {
		w.bytes = w.bytes[:headerBits/8]
		for i := range w.bytes {
			w.bytes[i] = 0
		}
	}
	w.endBitIndex = headerBits
}

// BitLength returns the number of bits written so far, including the
// 32-bit header.
func (w *Writer) BitLength() int {
	return w.endBitIndex
}

// AppendBit appends a single bit (0 or 1) at the current cursor.
func (w *Writer) AppendBit(bit uint8) {
	if w.endBitIndex%8 == 0 {
		w.bytes = append(w.bytes, 0)
	}
	byteIndex := w.endBitIndex / 8
	bitIndex := uint(w.endBitIndex % 8)
	if bit&1 != 0 {
		w.bytes[byteIndex] |= 1 << bitIndex
	}
	w.endBitIndex++
}

// AppendBool appends one bit: 1 if true, 0 if false.
func (w *Writer) AppendBool(b bool) {
	if b {
		w.AppendBit(1)
	} else {
		w.AppendBit(0)
	}
}

// AppendFixedUint64 appends the low widthBits bits of value, LSB-first.
// widthBits must be in (0, 64]; values wider than widthBits are silently
// truncated to their low bits, matching a declared-width field on the
// wire: there is no way to signal overflow after the width is fixed.
func (w *Writer) AppendFixedUint64(value uint64, widthBits int) {
	if widthBits <= 0 || widthBits > 64 {
		panic("bitwire: width_bits must be in (0, 64]")
	}
	for i := 0; i < widthBits; i++ {
		w.AppendBit(uint8((value >> uint(i)) & 1))
	}
}

// AppendFixed appends the low widthBits bits of value, LSB-first. T may be
// any integer type; signed values are taken as their two's-complement
// bit pattern.
func AppendFixed[T constraints.Integer](w *Writer, value T, widthBits int) {
	w.AppendFixedUint64(uint64(value), widthBits)
}

// AppendFull appends the whole-width two's-complement (or unsigned) bit
// pattern of value: AppendFixed(value, bit-width(T)).
func AppendFull[T constraints.Integer](w *Writer, value T) {
	w.AppendFixedUint64(uint64(value), 8*int(unsafe.Sizeof(value)))
}

// AppendFloat32 appends the 32-bit IEEE-754 bit pattern of x.
func (w *Writer) AppendFloat32(x float32) {
	w.AppendFixedUint64(uint64(math.Float32bits(x)), 32)
}

// AppendFloat64 appends the 64-bit IEEE-754 bit pattern of x.
func (w *Writer) AppendFloat64(x float64) {
	w.AppendFixedUint64(math.Float64bits(x), 64)
}

// AppendCount appends n as an unsigned integer whose width is derived
// from maxCountHint (see CountFieldWidth). Both Writer and Reader must
// use the same hint for a given field.
func (w *Writer) AppendCount(n uint64, maxCountHint uint64) {
	w.AppendFixedUint64(n, CountFieldWidth(maxCountHint))
}

// Align moves the cursor to the next byte boundary, skipping any
// trailing bits of the current (already zero) byte.
func (w *Writer) Align() {
	w.endBitIndex = 8 * len(w.bytes)
}

// AppendBytes encodes len(buf) as a count field (per maxCountHint), byte-
// aligns, then copies buf verbatim.
func (w *Writer) AppendBytes(buf []byte, maxCountHint uint64) {
	w.AppendCount(uint64(len(buf)), maxCountHint)
	w.Align()
	w.bytes = append(w.bytes, buf...)
	w.endBitIndex += 8 * len(buf)
}

// AppendBytesRaw byte-aligns and copies buf verbatim, with no length
// prefix. Used for fixed-size payloads (such as a UUID's 16 bytes) whose
// length both sides already agree on.
func (w *Writer) AppendBytesRaw(buf []byte) {
	w.Align()
	w.bytes = append(w.bytes, buf...)
	w.endBitIndex += 8 * len(buf)
}

// AppendString encodes the UTF-8 bytes of s via AppendBytes.
func (w *Writer) AppendString(s string, maxCountHint uint64) {
	w.AppendBytes([]byte(s), maxCountHint)
}

// Pack writes the total bit length into the 4-byte header, optionally
// appends a little-endian CRC-32 trailer covering every byte written so
// far, and returns the finished buffer. Pack requires endBitIndex to fit
// in 32 bits; this is not checked, and a larger value is truncated to its
// low 32 bits in the header.
func (w *Writer) Pack(withCRC bool) []byte {
	binary.LittleEndian.PutUint32(w.bytes[0:4], uint32(w.endBitIndex))
	if !withCRC {
		return w.bytes
	}
	crc := ComputeCRC32(w.bytes)
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], crc)
	return append(w.bytes, trailer[:]...)
}
