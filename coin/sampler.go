package coin

import (
	"github.com/rohit-kuinkel1/flip-coin/entropy"
	"github.com/rohit-kuinkel1/flip-coin/math64"
	"github.com/rohit-kuinkel1/flip-coin/physics"
)

// sampleInitialState maps an entropy reader and resolved launch parameters
// to an initial rigid-body state: Gaussian launch impulse along +Y, Gaussian
// spin magnitude about a Gaussian-perturbed ideal axis, with position and
// orientation copied straight from params. Deterministic in (r, params): the
// same entropy bytes and parameters always yield the same state.
func sampleInitialState(r *entropy.Reader, params LaunchParameters) physics.State {
	impulse := r.NextGaussian(params.ImpulseMean, params.ImpulseStdDev)
	linearVelocity := math64.Vec3{X: 0, Y: impulse, Z: 0}

	spinMag := r.NextGaussian(params.AngularSpeedMean, params.AngularSpeedStdDev)
	perturb := math64.Vec3{
		X: r.NextGaussian(0, params.SpinAxisPerturbStdDev),
		Y: r.NextGaussian(0, params.SpinAxisPerturbStdDev),
		Z: r.NextGaussian(0, params.SpinAxisPerturbStdDev),
	}
	axis := params.IdealSpinAxis.Normalize().Add(perturb).Normalize()
	angularVelocity := axis.Scale(spinMag)

	return physics.State{
		Position:        params.InitialPosition,
		Orientation:     params.InitialOrientation,
		LinearVelocity:  linearVelocity,
		AngularVelocity: angularVelocity,
	}
}

// applyOverrides replaces any non-nil field of o onto s, leaving the rest of
// the sampled state untouched. A nil o is a no-op.
func applyOverrides(s physics.State, o *InitialConditionOverrides) physics.State {
	if o == nil {
		return s
	}
	if o.Position != nil {
		s.Position = *o.Position
	}
	if o.Orientation != nil {
		s.Orientation = *o.Orientation
	}
	if o.LinearVelocity != nil {
		s.LinearVelocity = *o.LinearVelocity
	}
	if o.AngularVelocity != nil {
		s.AngularVelocity = *o.AngularVelocity
	}
	return s
}
