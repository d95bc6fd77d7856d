package codec

import (
	"github.com/bitwire/bitwire/stream"
	"github.com/google/uuid"
)

// EncodeUUID writes the UUID's 16 raw bytes, byte-aligned, with no
// length prefix (the length is fixed and known to both sides).
func EncodeUUID(w *stream.Writer, id uuid.UUID) {
	w.AppendBytesRaw(id[:])
}

// DecodeUUID reads 16 raw bytes and parses them as a UUID.
func DecodeUUID(r *stream.Reader) (uuid.UUID, error) {
	raw, err := r.ReadBytesRaw(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	if err := id.UnmarshalBinary(raw); err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}
