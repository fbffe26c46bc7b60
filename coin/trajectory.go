package coin

import (
	"github.com/rohit-kuinkel1/flip-coin/physics"
	"github.com/rohit-kuinkel1/flip-coin/util/logger"
)

// maxTrajectorySamples bounds a single debug run's recorded trajectory to
// roughly 20s of simulated time at the fixed 10kHz step, so a pathological
// non-settling run cannot exhaust memory.
const maxTrajectorySamples = 200000

// Trajectory records a body's State by value at every integrator step of a
// debug attempt, up to maxTrajectorySamples. A nil *Trajectory is a valid,
// inert recorder: record is a no-op and Samples returns nil, so the
// controller's inner loop does not need to branch on whether recording was
// requested.
type Trajectory struct {
	samples []physics.State
	capped  bool
}

func newTrajectory() *Trajectory {
	return &Trajectory{samples: make([]physics.State, 0, 1024)}
}

func (t *Trajectory) record(s physics.State) {
	if t == nil {
		return
	}
	if len(t.samples) >= maxTrajectorySamples {
		if !t.capped {
			t.capped = true
			logger.Log.Warn().
				Int("cap", maxTrajectorySamples).
				Msg("trajectory recorder reached its sample cap; further steps are not recorded")
		}
		return
	}
	t.samples = append(t.samples, s)
}

// Samples returns the recorded states in step order. Safe to call on a nil
// Trajectory.
func (t *Trajectory) Samples() []physics.State {
	if t == nil {
		return nil
	}
	return t.samples
}
