package codec

import "github.com/bitwire/bitwire/stream"

// Vector2 is a 2-component numeric vector encoded as two scalars in
// order: a struct whose fields are each encoded via the same component
// codec, generalized to an arbitrary scalar type and codec, most often
// a range compressor.
type Vector2[T any] struct {
	X, Y T
}

// EncodeVector2 writes v.X then v.Y via encode.
func EncodeVector2[T any](w *stream.Writer, v Vector2[T], encode EncodeFunc[T]) {
	encode(w, v.X)
	encode(w, v.Y)
}

// DecodeVector2 reads X then Y via decode.
func DecodeVector2[T any](r *stream.Reader, decode DecodeFunc[T]) (Vector2[T], error) {
	x, err := decode(r)
	if err != nil {
		return Vector2[T]{}, err
	}
	y, err := decode(r)
	if err != nil {
		return Vector2[T]{}, err
	}
	return Vector2[T]{X: x, Y: y}, nil
}

// Vector3 is a 3-component numeric vector encoded as three scalars in
// order.
type Vector3[T any] struct {
	X, Y, Z T
}

// EncodeVector3 writes v.X, v.Y, then v.Z via encode.
func EncodeVector3[T any](w *stream.Writer, v Vector3[T], encode EncodeFunc[T]) {
	encode(w, v.X)
	encode(w, v.Y)
	encode(w, v.Z)
}

// DecodeVector3 reads X, Y, then Z via decode.
func DecodeVector3[T any](r *stream.Reader, decode DecodeFunc[T]) (Vector3[T], error) {
	x, err := decode(r)
	if err != nil {
		return Vector3[T]{}, err
	}
	y, err := decode(r)
	if err != nil {
		return Vector3[T]{}, err
	}
	z, err := decode(r)
	if err != nil {
		return Vector3[T]{}, err
	}
	return Vector3[T]{X: x, Y: y, Z: z}, nil
}
