package physics

import (
	"testing"

	"github.com/rohit-kuinkel1/flip-coin/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStable_AllConditionsMustHold(t *testing.T) {
	cfg := DefaultStabilityConfig(0.01213)

	tests := []struct {
		name   string
		state  State
		expect bool
	}{
		{
			name:   "fully at rest near ground",
			state:  State{Position: math64.Vec3{Y: 0.001}},
			expect: true,
		},
		{
			name: "moving too fast",
			state: State{
				Position:       math64.Vec3{Y: 0.001},
				LinearVelocity: math64.Vec3{X: 1},
			},
			expect: false,
		},
		{
			name: "spinning too fast",
			state: State{
				Position:        math64.Vec3{Y: 0.001},
				AngularVelocity: math64.Vec3{Y: 5},
			},
			expect: false,
		},
		{
			name:   "at apex with momentarily zero velocity",
			state:  State{Position: math64.Vec3{Y: 1.0}},
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBody(0.00567, 0.01213, 0.00175, tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, IsStable(b, cfg))
		})
	}
}

func TestDefaultStabilityConfig_BandScalesWithRadius(t *testing.T) {
	small := DefaultStabilityConfig(0.001)
	assert.Equal(t, 0.01, small.GroundBand)

	large := DefaultStabilityConfig(0.02)
	assert.Equal(t, 0.04, large.GroundBand)
}
