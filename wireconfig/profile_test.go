package wireconfig

import (
	"testing"

	"github.com/bitwire/bitwire/stream"
	"github.com/stretchr/testify/require"
)

func TestParseProfileDefaults(t *testing.T) {
	p, err := ParseProfile([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, DefaultProfile.MaxCountHint, p.MaxCountHint)
	require.False(t, p.WithCRC)
}

func TestParseProfileOverrides(t *testing.T) {
	p, err := ParseProfile([]byte(`{
		// reserve a bit more room and always checksum
		reserve_hint: 256,
		max_count_hint: 180,
		with_crc: true,
	}`))
	require.NoError(t, err)
	require.Equal(t, 256, p.ReserveHint)
	require.EqualValues(t, 180, p.MaxCountHint)
	require.True(t, p.WithCRC)
}

// S7 (expansion) — a profile's max_count_hint changes no wire bytes
// versus passing the same hint directly.
func TestProfileMaxCountHintMatchesDirectHint(t *testing.T) {
	p, err := ParseProfile([]byte(`{ max_count_hint: 180 }`))
	require.NoError(t, err)

	require.Equal(t, stream.CountFieldWidth(180), stream.CountFieldWidth(p.MaxCountHint))

	w1 := p.NewWriter()
	w1.AppendCount(8, p.MaxCountHint)
	packed1 := p.Pack(w1)

	w2 := stream.NewWriter(0)
	w2.AppendCount(8, 180)
	packed2 := w2.Pack(false)

	require.Equal(t, packed1, packed2)
}
