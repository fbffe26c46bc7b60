// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/rohit-kuinkel1/flip-coin/math64"

// Derive evaluates the StateDerivative functional at the given predicted
// state for a body with the given mass properties and force config.
// Implements spec.md's dPosition/dt = v, dv/dt = F(S)/m,
// dOrientation/dt = 1/2 (0,omega) (x) orientation, and Euler's rotational
// equation dOmega/dt = I^-1_world * (tau_ext - omega x (I_world * omega)).
// The gyroscopic term omega x (I_world*omega) is never dropped: it is what
// produces tumbling for the coin's non-spherical inertia tensor, and
// intermediate-axis instability for a fully asymmetric one (such as a
// tensor passed to NewBodyWithInertia).
func Derive(s State, invInertiaBody, inertiaBody math64.Mat3, mass float64, cfg ForceConfig, radius float64) Derivative {
	r := s.Orientation.Mat3()
	inertiaWorld := r.Mul(inertiaBody).Mul(r.Transpose())
	invInertiaWorld := r.Mul(invInertiaBody).Mul(r.Transpose())

	force := NetForce(mass, radius, s.LinearVelocity, cfg)
	torque := NetTorque(s.AngularVelocity, cfg)

	gyroscopic := s.AngularVelocity.Cross(inertiaWorld.MulVec3(s.AngularVelocity))
	angularAccel := invInertiaWorld.MulVec3(torque.Sub(gyroscopic))

	return Derivative{
		Velocity:            s.LinearVelocity,
		Force:               force,
		Spin:                s.Orientation.Derivative(s.AngularVelocity),
		AngularAcceleration: angularAccel,
	}
}

// advance applies the linear RK4 combination rule used both for the four
// intermediate-state previews and the final step: it is NOT a generic
// weighted blend, it specifically advances position/velocity/orientation
// from the base state s0 by dt using the given derivative.
func advance(s0 State, d Derivative, dt, invMass float64) State {
	next := State{
		Position:        s0.Position.Add(d.Velocity.Scale(dt)),
		LinearVelocity:  s0.LinearVelocity.Add(d.Force.Scale(dt * invMass)),
		Orientation:     s0.Orientation.Add(d.Spin.Scale(dt)).Normalize(),
		AngularVelocity: s0.AngularVelocity.Add(d.AngularAcceleration.Scale(dt)),
	}
	return next
}

func meanVec3(a, b, c, d math64.Vec3) math64.Vec3 {
	return a.Add(b.Scale(2)).Add(c.Scale(2)).Add(d).Scale(1.0 / 6.0)
}

func meanQuaternion(a, b, c, d math64.Quaternion) math64.Quaternion {
	return a.Add(b.Scale(2)).Add(c.Scale(2)).Add(d).Scale(1.0 / 6.0)
}

// Step advances b.State by dt using the classical 4th-order Runge-Kutta
// method: four derivative evaluations (k1..k4), combined as
// (k1 + 2k2 + 2k3 + k4)/6. Intermediate state previews used to evaluate
// k2..k4 renormalize their orientation before it is fed back into
// force/inertia-world computations — skipping this renormalization is a
// known source of energy drift in the intermediate stages.
func (b *Body) Step(dt float64, cfg ForceConfig) {
	invMass := 1.0 / b.Mass
	s0 := b.State

	k1 := Derive(s0, b.invInertiaBody, b.inertiaBody, b.Mass, cfg, b.Radius)

	s1 := advance(s0, k1, dt/2, invMass)
	k2 := Derive(s1, b.invInertiaBody, b.inertiaBody, b.Mass, cfg, b.Radius)

	s2 := advance(s0, k2, dt/2, invMass)
	k3 := Derive(s2, b.invInertiaBody, b.inertiaBody, b.Mass, cfg, b.Radius)

	s3 := advance(s0, k3, dt, invMass)
	k4 := Derive(s3, b.invInertiaBody, b.inertiaBody, b.Mass, cfg, b.Radius)

	meanVelocity := meanVec3(k1.Velocity, k2.Velocity, k3.Velocity, k4.Velocity)
	meanForce := meanVec3(k1.Force, k2.Force, k3.Force, k4.Force)
	meanSpin := meanQuaternion(k1.Spin, k2.Spin, k3.Spin, k4.Spin)
	meanAngularAccel := meanVec3(k1.AngularAcceleration, k2.AngularAcceleration, k3.AngularAcceleration, k4.AngularAcceleration)

	b.Position = b.Position.Add(meanVelocity.Scale(dt))
	b.LinearVelocity = b.LinearVelocity.Add(meanForce.Scale(dt * invMass))
	b.Orientation = b.Orientation.Add(meanSpin.Scale(dt)).Normalize()
	b.AngularVelocity = b.AngularVelocity.Add(meanAngularAccel.Scale(dt))
}
