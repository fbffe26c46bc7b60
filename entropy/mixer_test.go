package entropy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMix_EmptyInputYieldsEmptyOutput(t *testing.T) {
	assert.Nil(t, Mix())
}

func TestMix_OrderSensitive(t *testing.T) {
	a := []byte("alpha")
	b := []byte("beta")
	assert.NotEqual(t, Mix(a, b), Mix(b, a))
}

func TestMix_Deterministic(t *testing.T) {
	a := []byte("alpha")
	b := []byte("beta")
	assert.Equal(t, Mix(a, b), Mix(a, b))
}

// Q5: a one-bit difference in input must flip at least 24 of the 32 output
// bytes (avalanche effect of the underlying SHA-256).
func TestMix_Avalanche(t *testing.T) {
	a := bytes.Repeat([]byte{0x42}, 64)
	b := append([]byte{}, a...)
	b[0] ^= 0x01

	ha := Mix(a)
	hb := Mix(b)

	diffBytes := 0
	for i := range ha {
		if ha[i] != hb[i] {
			diffBytes++
		}
	}
	assert.GreaterOrEqual(t, diffBytes, 24)
}

// Q6: same seed yields same bytes; a biased (all-zero) seed still expands
// to output with >=100 distinct byte values and a one-bit fraction in
// [0.4, 0.6] over 256 bytes.
func TestExpand_DeterministicAndUniform(t *testing.T) {
	seed := make([]byte, 32)

	out1, err := Expand(seed, 256)
	require.NoError(t, err)
	out2, err := Expand(seed, 256)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)

	distinct := map[byte]bool{}
	var onesBits, totalBits int
	for _, b := range out1 {
		distinct[b] = true
		for i := 0; i < 8; i++ {
			totalBits++
			if b&(1<<i) != 0 {
				onesBits++
			}
		}
	}
	assert.GreaterOrEqual(t, len(distinct), 100)

	fraction := float64(onesBits) / float64(totalBits)
	assert.GreaterOrEqual(t, fraction, 0.4)
	assert.LessOrEqual(t, fraction, 0.6)
}

func TestExpand_RejectsLengthAboveMax(t *testing.T) {
	_, err := Expand(make([]byte, 32), MaxExpandLength+1)
	assert.Error(t, err)
}

func TestExpand_TruncatesToRequestedLength(t *testing.T) {
	out, err := Expand(make([]byte, 32), 10)
	require.NoError(t, err)
	assert.Len(t, out, 10)
}

// Q7: for any 4 bytes, the produced float lies in [0, 1 - 2^-32].
func TestUniformFloatFromBytes_Bounds(t *testing.T) {
	tests := [][4]byte{
		{0, 0, 0, 0},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x02, 0x03, 0x04},
	}
	for _, tt := range tests {
		u, err := UniformFloatFromBytes(tt[:], 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u, 0.0)
		assert.LessOrEqual(t, u, 1-1.0/4294967296.0)
	}
}

func TestUniformFloatFromBytes_FailsWhenTooShort(t *testing.T) {
	_, err := UniformFloatFromBytes([]byte{1, 2, 3}, 0)
	assert.Error(t, err)
}

func TestUniformFloatInRange(t *testing.T) {
	assert.InDelta(t, 5.0, UniformFloatInRange(0, 5, 15), 1e-12)
	assert.InDelta(t, 15.0, UniformFloatInRange(1, 5, 15), 1e-12)
	assert.InDelta(t, 10.0, UniformFloatInRange(0.5, 5, 15), 1e-12)
}
