package entropy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_NextUniform_ConsumesFourBytes(t *testing.T) {
	expanded, err := Expand(make([]byte, 32), 16)
	require.NoError(t, err)
	r := NewReader(expanded)

	assert.Equal(t, 16, r.Remaining())
	_ = r.NextUniform()
	assert.Equal(t, 12, r.Remaining())
}

func TestReader_NextGaussian_Deterministic(t *testing.T) {
	expanded, err := Expand(make([]byte, 32), 256)
	require.NoError(t, err)

	r1 := NewReader(expanded)
	r2 := NewReader(expanded)

	g1 := r1.NextGaussian(5.0, 0.5)
	g2 := r2.NextGaussian(5.0, 0.5)
	assert.Equal(t, g1, g2)
	assert.False(t, math.IsNaN(g1))
}

func TestReader_FallsBackWhenExhausted(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	u := r.NextUniform()
	assert.GreaterOrEqual(t, u, 0.0)
	assert.Less(t, u, 1.0)
}
