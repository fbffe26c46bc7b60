package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohit-kuinkel1/flip-coin/math64"
	"github.com/rohit-kuinkel1/flip-coin/physics"
)

func TestTrajectory_NilIsInert(t *testing.T) {
	var traj *Trajectory
	traj.record(physics.State{})
	assert.Nil(t, traj.Samples())
}

func TestTrajectory_RecordsInOrder(t *testing.T) {
	traj := newTrajectory()
	for i := 0; i < 5; i++ {
		traj.record(physics.State{Position: math64.Vec3{Y: float64(i)}})
	}
	assert.Len(t, traj.Samples(), 5)
	for i, s := range traj.Samples() {
		assert.Equal(t, float64(i), s.Position.Y)
	}
}

func TestTrajectory_CapsAtMaxSamples(t *testing.T) {
	traj := newTrajectory()
	for i := 0; i < maxTrajectorySamples+10; i++ {
		traj.record(physics.State{})
	}
	assert.Len(t, traj.Samples(), maxTrajectorySamples)
	assert.True(t, traj.capped)
}
