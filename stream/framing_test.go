package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// S1 — two small uints round-trip, and the packed bytes match the
// literal scenario: header = 32+64+64 = 160 bits (0xA0 0x00 0x00 0x00)
// followed by two 8-byte little-endian uint64s.
func TestScenarioTwoUint64s(t *testing.T) {
	w := NewWriter(0)
	AppendFull[uint64](w, 163)
	AppendFull[uint64](w, 164)
	packed := w.Pack(false)

	require.Equal(t, []byte{0xA0, 0x00, 0x00, 0x00}, packed[0:4])
	require.Len(t, packed, 20)

	r, err := NewReader(packed)
	require.NoError(t, err)

	a, err := ReadFull[uint64](r)
	require.NoError(t, err)
	require.EqualValues(t, 163, a)

	b, err := ReadFull[uint64](r)
	require.NoError(t, err)
	require.EqualValues(t, 164, b)
}

// Property 7: after Pack(false), the header equals the total bit length
// and len(bytes) == ceil(header/8).
func TestPackWithoutCRCHeader(t *testing.T) {
	w := NewWriter(0)
	w.AppendBool(true)
	w.AppendFixedUint64(5, 3)
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)
	require.EqualValues(t, 32+1+3, r.BitLength())

	wantBytes := (int(r.BitLength()) + 7) / 8
	require.Len(t, packed, wantBytes)
}

// Properties 8 & 9: the CRC trailer matches, a single-bit flip changes
// it, and NewCRCValidatedReader accepts exactly what Pack(true) produced.
func TestPackWithCRCAndValidatedReader(t *testing.T) {
	w := NewWriter(0)
	w.AppendString("hello bitwire", 64)
	packed := w.Pack(true)

	payload := packed[:len(packed)-4]
	trailer := packed[len(packed)-4:]
	require.Equal(t, ComputeCRC32(payload), leUint32(trailer))

	r, err := NewCRCValidatedReader(packed)
	require.NoError(t, err)
	s, err := r.ReadString(64)
	require.NoError(t, err)
	require.Equal(t, "hello bitwire", s)

	flipped := append([]byte(nil), packed...)
	flipped[4] ^= 0x01
	_, err = NewCRCValidatedReader(flipped)
	require.ErrorIs(t, err, ErrIncorrectChecksum)
}

// S6 — CRC rejection on a flipped payload bit.
func TestScenarioCRCRejection(t *testing.T) {
	w := NewWriter(0)
	AppendFull[uint32](w, 0xdeadbeef)
	packed := w.Pack(true)

	packed[5] ^= 0x80
	_, err := NewCRCValidatedReader(packed)
	require.ErrorIs(t, err, ErrIncorrectChecksum)
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
