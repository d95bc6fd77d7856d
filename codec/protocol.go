// Package codec provides the stock value codecs (optional, array,
// bit-packed array, enumeration, UUID, vector) that compose onto a
// stream.Writer/stream.Reader pair. A user-defined value type joins the
// protocol by supplying its own pair of functions with these shapes:
//
//	encode func(*stream.Writer, T)
//	decode func(*stream.Reader) (T, error)
//
// decode may fail with stream.ErrTooShort or stream.ErrEncodingError; the
// stock codecs below propagate whichever one occurs first and stop.
package codec

import (
	"fmt"

	"github.com/bitwire/bitwire/stream"
	"golang.org/x/exp/constraints"
)

// EncodeFunc encodes a value of type T onto w.
type EncodeFunc[T any] func(w *stream.Writer, value T)

// DecodeFunc decodes a value of type T from r.
type DecodeFunc[T any] func(r *stream.Reader) (T, error)

// EncodeOptional writes a presence bit followed by the wrapped value if
// value is non-nil. A nil value writes a single zero bit.
func EncodeOptional[T any](w *stream.Writer, value *T, encode EncodeFunc[T]) {
	w.AppendBool(value != nil)
	if value != nil {
		encode(w, *value)
	}
}

// DecodeOptional reads a presence bit and, if set, the wrapped value.
func DecodeOptional[T any](r *stream.Reader, decode DecodeFunc[T]) (*T, error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := decode(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeArray writes a length field (per maxCountHint) followed by each
// element encoded in order via encode. This implements both the
// "bounded object array" shape (encode is a user Codec Protocol
// function) and any other length-prefixed array of user values.
func EncodeArray[T any](w *stream.Writer, items []T, maxCountHint uint64, encode EncodeFunc[T]) {
	w.AppendCount(uint64(len(items)), maxCountHint)
	for _, item := range items {
		encode(w, item)
	}
}

// DecodeArray reads a length field (per maxCountHint) followed by that
// many elements via decode.
func DecodeArray[T any](r *stream.Reader, maxCountHint uint64, decode DecodeFunc[T]) ([]T, error) {
	n, err := r.ReadCount(maxCountHint)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// EncodeBitArray writes a length field (per maxCountHint) followed by
// each element packed into exactly valueBits bits (the "fixed-bit array"
// shape).
func EncodeBitArray[T constraints.Integer](w *stream.Writer, items []T, maxCountHint uint64, valueBits int) {
	w.AppendCount(uint64(len(items)), maxCountHint)
	for _, item := range items {
		w.AppendFixedUint64(uint64(item), valueBits)
	}
}

// DecodeBitArray reads a length field followed by that many valueBits-
// wide elements.
func DecodeBitArray[T constraints.Integer](r *stream.Reader, maxCountHint uint64, valueBits int) ([]T, error) {
	n, err := r.ReadCount(maxCountHint)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		u, err := r.ReadFixedUint64(valueBits)
		if err != nil {
			return nil, err
		}
		items = append(items, T(u))
	}
	return items, nil
}

// EncodeEnum writes value's ordinal (0-based) as a raw tag sized for a
// closed universe of variantCount variants.
func EncodeEnum(w *stream.Writer, ordinal int, variantCount int) {
	w.AppendFixedUint64(uint64(ordinal), stream.EnumFieldWidth(variantCount))
}

// DecodeEnum reads a raw tag sized for variantCount variants and fails
// with stream.ErrEncodingError if the stored value is not a valid
// 0-based ordinal (i.e. is >= variantCount).
func DecodeEnum(r *stream.Reader, variantCount int) (int, error) {
	u, err := r.ReadFixedUint64(stream.EnumFieldWidth(variantCount))
	if err != nil {
		return 0, err
	}
	if u >= uint64(variantCount) {
		return 0, fmt.Errorf("%w: enum tag %d outside of %d declared variants", stream.ErrEncodingError, u, variantCount)
	}
	return int(u), nil
}
