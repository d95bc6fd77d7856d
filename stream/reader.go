package stream

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Reader reads bits from an immutable, externally-owned byte sequence.
// Multiple readers may share read-only access to the same bytes, but a
// single Reader must not be driven from more than one goroutine.
type Reader struct {
	bytes       []byte
	endBitIndex uint64
	currentBit  uint64
}

// NewReader constructs a reader over bytes, which must be at least 4
// bytes long. The first 4 bytes are read as a little-endian uint32 giving
// the total payload bit length (including the header itself); the cursor
// starts at bit 32.
func NewReader(bytes []byte) (*Reader, error) {
	if len(bytes) < 4 {
		return nil, ErrTooShort
	}
	end := binary.LittleEndian.Uint32(bytes[0:4])
	return &Reader{bytes: bytes, endBitIndex: uint64(end), currentBit: headerBits}, nil
}

// NewCRCValidatedReader requires bytes to be at least 8 bytes long,
// treats the last 4 bytes as a little-endian CRC-32 trailer covering
// everything before it, and fails with ErrIncorrectChecksum if the
// trailer does not match. On success it behaves like NewReader over the
// bytes preceding the trailer.
func NewCRCValidatedReader(bytes []byte) (*Reader, error) {
	if len(bytes) < 8 {
		return nil, ErrTooShort
	}
	payload := bytes[:len(bytes)-4]
	trailer := bytes[len(bytes)-4:]
	want := binary.LittleEndian.Uint32(trailer)
	if ComputeCRC32(payload) != want {
		return nil, ErrIncorrectChecksum
	}
	return NewReader(payload)
}

// BitLength returns the total number of payload bits declared by the
// header (including the header itself).
func (r *Reader) BitLength() uint64 {
	return r.endBitIndex
}

// Position returns the current read cursor, in bits from the start of
// the stream.
func (r *Reader) Position() uint64 {
	return r.currentBit
}

// ReadBit reads one bit and advances the cursor by one. The cursor is
// left wherever it stopped on error: callers should treat a reader that
// has returned an error as poisoned.
func (r *Reader) ReadBit() (uint8, error) {
	if r.currentBit >= r.endBitIndex || r.currentBit >= 8*uint64(len(r.bytes)) {
		return 0, ErrTooShort
	}
	byteIndex := r.currentBit / 8
	bitIndex := r.currentBit % 8
	bit := (r.bytes[byteIndex] >> bitIndex) & 1
	r.currentBit++
	return bit, nil
}

// ReadBool reads one bit as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	bit, err := r.ReadBit()
	if err != nil {
		return false, err
	}
	return bit != 0, nil
}

// ReadFixedUint64 reads widthBits bits, LSB-first, into an unsigned
// value. widthBits must be in (0, 64].
func (r *Reader) ReadFixedUint64(widthBits int) (uint64, error) {
	if widthBits <= 0 || widthBits > 64 {
		panic("bitwire: width_bits must be in (0, 64]")
	}
	var result uint64
	for i := 0; i < widthBits; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		result |= uint64(bit) << uint(i)
	}
	return result, nil
}

// ReadFixed reads widthBits bits and returns them reinterpreted as T.
func ReadFixed[T constraints.Integer](r *Reader, widthBits int) (T, error) {
	u, err := r.ReadFixedUint64(widthBits)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(u), nil
}

// ReadFull reads exactly bit-width(T) bits and returns them reinterpreted
// as T's two's-complement (or unsigned) bit pattern.
func ReadFull[T constraints.Integer](r *Reader) (T, error) {
	var zero T
	return ReadFixed[T](r, 8*int(unsafe.Sizeof(zero)))
}

// ReadFloat32 reads a 32-bit IEEE-754 value.
func (r *Reader) ReadFloat32() (float32, error) {
	u, err := r.ReadFixedUint64(32)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(u)), nil
}

// ReadFloat64 reads a 64-bit IEEE-754 value.
func (r *Reader) ReadFloat64() (float64, error) {
	u, err := r.ReadFixedUint64(64)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// ReadCount reads a length/count field whose width is derived from
// maxCountHint (see CountFieldWidth). Must match the hint the writer used.
func (r *Reader) ReadCount(maxCountHint uint64) (uint64, error) {
	return r.ReadFixedUint64(CountFieldWidth(maxCountHint))
}

// Align advances the cursor to the next byte boundary.
func (r *Reader) Align() {
	if rem := r.currentBit % 8; rem != 0 {
		r.currentBit += 8 - rem
	}
}

// ReadBytes reads a count field (per maxCountHint), aligns to the next
// byte boundary, then copies that many raw bytes.
func (r *Reader) ReadBytes(maxCountHint uint64) ([]byte, error) {
	length, err := r.ReadCount(maxCountHint)
	if err != nil {
		return nil, err
	}
	r.Align()
	byteIndex := r.currentBit / 8
	if byteIndex+length > uint64(len(r.bytes)) || r.currentBit+8*length > r.endBitIndex {
		return nil, ErrTooShort
	}
	out := make([]byte, length)
	copy(out, r.bytes[byteIndex:byteIndex+length])
	r.currentBit += 8 * length
	return out, nil
}

// ReadBytesRaw byte-aligns and copies exactly n raw bytes, with no
// length prefix. The counterpart to Writer.AppendBytesRaw.
func (r *Reader) ReadBytesRaw(n int) ([]byte, error) {
	r.Align()
	byteIndex := r.currentBit / 8
	if byteIndex+uint64(n) > uint64(len(r.bytes)) || r.currentBit+8*uint64(n) > r.endBitIndex {
		return nil, ErrTooShort
	}
	out := make([]byte, n)
	copy(out, r.bytes[byteIndex:byteIndex+uint64(n)])
	r.currentBit += 8 * uint64(n)
	return out, nil
}

// ReadString reads a byte buffer via ReadBytes and interprets it as
// UTF-8. Invalid UTF-8 is passed through as Go's string conversion does
// (it is not an error of this package).
func (r *Reader) ReadString(maxCountHint uint64) (string, error) {
	buf, err := r.ReadBytes(maxCountHint)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
