package entropy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSCollector_ReturnsRequestedLength(t *testing.T) {
	c := OSCollector{}
	sample, err := c.Collect(context.Background(), High)
	require.NoError(t, err)
	assert.Len(t, sample.Bytes, High.targetBytes())
	assert.Equal(t, High, sample.Stats.Level)
	assert.Equal(t, len(sample.Bytes)*8, sample.Stats.TotalBits)
}

func TestTimerJitterCollector_ReturnsRequestedLength(t *testing.T) {
	c := TimerJitterCollector{Passes: 2}
	sample, err := c.Collect(context.Background(), Fast)
	require.NoError(t, err)
	assert.Len(t, sample.Bytes, Fast.targetBytes())
}

func TestTimerJitterCollector_HonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := TimerJitterCollector{Passes: 1000000}
	_, err := c.Collect(ctx, Paranoid)
	assert.Error(t, err)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "fast", Fast.String())
	assert.Equal(t, "standard", Standard.String())
	assert.Equal(t, "high", High.String())
	assert.Equal(t, "paranoid", Paranoid.String())
}
