// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/rohit-kuinkel1/flip-coin/math64"
)

// ForceConfig holds the calibrated constants of the force model: gravity,
// quadratic linear drag and linear angular drag.
type ForceConfig struct {
	Gravity          float64 // m/s^2, magnitude along -Y
	AirDensity       float64 // kg/m^3
	DragCoefficient  float64 // dimensionless
	AngularDamping   float64 // torque per unit angular velocity, small positive
}

// DefaultForceConfig returns the calibrated defaults used when a caller does
// not override the force model.
//
// AngularDamping is fixed at 5e-4. The source this was distilled from ships
// two different defaults in adjacent files (1e-8 and 5e-4); per the design
// notes we pick one rather than average, and document the choice here: 5e-4
// gives a visibly damped tumble within the fixed 10kHz step budget without
// suppressing the gyroscopic term's effect on short timescales, whereas
// 1e-8 is indistinguishable from undamped across a single flip's duration.
func DefaultForceConfig() ForceConfig {
	return ForceConfig{
		Gravity:         9.81,
		AirDensity:      1.2,
		DragCoefficient: 1.17,
		AngularDamping:  5e-4,
	}
}

// Gravity returns the gravitational force on a body of the given mass.
// Applies no torque.
func Gravity(mass float64, cfg ForceConfig) math64.Vec3 {
	return math64.Vec3{X: 0, Y: -mass * cfg.Gravity, Z: 0}
}

// LinearDrag returns the quadratic aerodynamic drag force opposing v for a
// body presenting a circular cross-section of the given radius. Returns the
// zero vector when |v|^2 is below 1e-12, to avoid normalizing a near-zero
// vector.
func LinearDrag(v math64.Vec3, radius float64, cfg ForceConfig) math64.Vec3 {
	speedSq := v.LengthSq()
	if speedSq < 1e-12 {
		return math64.Vec3Zero
	}
	area := math.Pi * radius * radius
	coeff := 0.5 * cfg.AirDensity * cfg.DragCoefficient * area * speedSq
	return v.Normalize().Scale(-coeff)
}

// AngularDrag returns the linear angular-drag torque opposing omega.
func AngularDrag(omega math64.Vec3, cfg ForceConfig) math64.Vec3 {
	return omega.Scale(-cfg.AngularDamping)
}

// NetForce returns the combined gravity + linear drag force on a body.
func NetForce(mass, radius float64, v math64.Vec3, cfg ForceConfig) math64.Vec3 {
	return Gravity(mass, cfg).Add(LinearDrag(v, radius, cfg))
}

// NetTorque returns the combined external torque (angular drag only; the
// force model contributes no other torque).
func NetTorque(omega math64.Vec3, cfg ForceConfig) math64.Vec3 {
	return AngularDrag(omega, cfg)
}
