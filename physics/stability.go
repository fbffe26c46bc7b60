// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "math"

// StabilityConfig holds the thresholds used to decide whether a body has
// come to rest.
type StabilityConfig struct {
	LinearVelocityThreshold  float64 // m/s
	AngularVelocityThreshold float64 // rad/s
	GroundBand              float64 // m, position.Y below which rest is plausible
	ConsecutiveStepsRequired int
}

// DefaultStabilityConfig returns the calibrated default thresholds for a
// body of the given radius.
//
// GroundBand is parameterized as max(0.01, 2*radius) rather than the fixed
// 0.01m the source hard-codes: a body whose radius exceeds 1cm would never
// satisfy a fixed 0.01m band, so stability could never trigger. This is an
// open-design-question resolution, not a behavior the caller can silently
// disable.
func DefaultStabilityConfig(radius float64) StabilityConfig {
	return StabilityConfig{
		LinearVelocityThreshold:  0.01,
		AngularVelocityThreshold: 0.1,
		GroundBand:               math.Max(0.01, 2*radius),
		ConsecutiveStepsRequired: 10,
	}
}

// IsStable reports whether b satisfies all three stability conditions at
// this instant: low linear speed, low angular speed, and a position near
// the ground. The ground-band check suppresses a false "stable at apex"
// reading when linear velocity briefly nulls at the top of the flight.
func IsStable(b *Body, cfg StabilityConfig) bool {
	return b.LinearVelocity.Length() <= cfg.LinearVelocityThreshold &&
		b.AngularVelocity.Length() <= cfg.AngularVelocityThreshold &&
		b.Position.Y < cfg.GroundBand
}
