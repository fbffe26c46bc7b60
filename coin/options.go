// Package coin implements the controller (C11) that drives a flip from a
// pool of entropy to a definite HEADS/TAILS outcome, composing the entropy,
// math64 and physics packages.
package coin

import (
	"github.com/rohit-kuinkel1/flip-coin/entropy"
	"github.com/rohit-kuinkel1/flip-coin/math64"
)

// CoinConfig holds the physical properties of the coin, in SI units.
type CoinConfig struct {
	Mass      float64 // kg
	Radius    float64 // m
	Thickness float64 // m
}

// DefaultCoinConfig returns the calibrated default coin dimensions: a US
// quarter-ish disc.
func DefaultCoinConfig() CoinConfig {
	return CoinConfig{Mass: 0.00567, Radius: 0.01213, Thickness: 0.00175}
}

// Range is an inclusive [Min, Max] bound supplied by a caller to override a
// default launch distribution.
type Range struct {
	Min, Max float64
}

// TossProfile lets a caller widen or narrow the default launch
// distributions. A nil field falls back to the built-in default. A supplied
// velocity range is mapped to mu = (min+max)/2, sigma = (max-min)/4; a
// supplied HeightRange sets the initial height to its midpoint only, with no
// spread.
type TossProfile struct {
	LinearVelocityRange  *Range
	AngularVelocityRange *Range
	HeightRange          *Range
}

// FlipOptions configures one call to FlipCoin or DebugFlipCoin.
type FlipOptions struct {
	EntropyLevel   entropy.Level
	CoinConfig     CoinConfig
	TossProfile    TossProfile
	TimeoutMs      int64
	MaxEdgeRetries int

	// Collector is the entropy collaborator. Defaults to entropy.OSCollector{}
	// when nil.
	Collector entropy.Collector
}

// DefaultFlipOptions returns the calibrated default options.
func DefaultFlipOptions() FlipOptions {
	return FlipOptions{
		EntropyLevel:   entropy.Standard,
		CoinConfig:     DefaultCoinConfig(),
		TossProfile:    TossProfile{},
		TimeoutMs:      10000,
		MaxEdgeRetries: 5,
		Collector:      entropy.OSCollector{},
	}
}

// InitialConditionOverrides lets debugFlipCoin callers pin individual
// sampled fields while leaving the rest to the sampler. A nil field is left
// sampled.
type InitialConditionOverrides struct {
	Position        *math64.Vec3
	Orientation     *math64.Quaternion
	LinearVelocity  *math64.Vec3
	AngularVelocity *math64.Vec3
}

// DebugFlipOptions extends FlipOptions with the debug entry's extra
// collaborators: a fixed seed bypassing the entropy collector, individual
// initial-condition overrides, and trajectory recording.
type DebugFlipOptions struct {
	FlipOptions

	// Seed, if non-nil, bypasses the entropy collector entirely and is fed
	// to the mixer directly.
	Seed []byte

	InitialConditions *InitialConditionOverrides
	RecordTrajectory  bool
}

// defaultSpinAxisPerturbStdDev is the standard deviation of the per-axis
// Gaussian perturbation applied to the ideal spin axis. Not named by the
// source material; a small fixed constant recorded as a design decision in
// DESIGN.md.
const defaultSpinAxisPerturbStdDev = 0.05

// LaunchParameters is the internal, fully-resolved form of TossProfile:
// means and standard deviations ready for the sampler.
type LaunchParameters struct {
	ImpulseMean, ImpulseStdDev           float64
	AngularSpeedMean, AngularSpeedStdDev float64
	SpinAxisPerturbStdDev                float64
	IdealSpinAxis                        math64.Vec3
	InitialPosition                      math64.Vec3
	InitialOrientation                   math64.Quaternion
}

func defaultLaunchParameters() LaunchParameters {
	return LaunchParameters{
		ImpulseMean:           5.0,
		ImpulseStdDev:         0.5,
		AngularSpeedMean:      120,
		AngularSpeedStdDev:    20,
		SpinAxisPerturbStdDev: defaultSpinAxisPerturbStdDev,
		IdealSpinAxis:         math64.Vec3Right,
		InitialPosition:       math64.Vec3{X: 0, Y: 1.0, Z: 0},
		InitialOrientation:    math64.QuaternionIdentity,
	}
}

// mapTossProfile resolves a caller-supplied TossProfile into
// LaunchParameters, filling every unset range from the defaults.
func mapTossProfile(profile TossProfile) LaunchParameters {
	params := defaultLaunchParameters()

	if profile.LinearVelocityRange != nil {
		params.ImpulseMean, params.ImpulseStdDev = rangeToMuSigma(*profile.LinearVelocityRange)
	}
	if profile.AngularVelocityRange != nil {
		params.AngularSpeedMean, params.AngularSpeedStdDev = rangeToMuSigma(*profile.AngularVelocityRange)
	}
	if profile.HeightRange != nil {
		mu, _ := rangeToMuSigma(*profile.HeightRange)
		params.InitialPosition = math64.Vec3{X: 0, Y: mu, Z: 0}
	}

	return params
}

func rangeToMuSigma(r Range) (mu, sigma float64) {
	return (r.Min + r.Max) / 2, (r.Max - r.Min) / 4
}
