package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWidth(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{15, 4},
		{16, 5},
		{180, 8},
		{255, 8},
	}
	for _, c := range cases {
		require.Equal(t, c.want, BitWidth(c.v), "BitWidth(%d)", c.v)
	}
}

// S4 — BitArray(max_count=180, ...): length field width is 8 bits.
func TestCountFieldWidthScenario(t *testing.T) {
	require.Equal(t, 8, CountFieldWidth(180))
}

// S3 — 4-variant enum: width = ceil(log2(5)) = 3 bits.
func TestEnumFieldWidthScenario(t *testing.T) {
	require.Equal(t, 3, EnumFieldWidth(4))
}
