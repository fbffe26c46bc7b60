// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/rohit-kuinkel1/flip-coin/math64"
)

// State is the fundamental simulation record: the center-of-mass position,
// orientation, and linear/angular velocities of a rigid body at an instant.
// It is a plain value; nothing in this package mutates a State field in
// place except the in-place updates of Body.State made by Body.Step and
// Respond.
type State struct {
	Position        math64.Vec3
	Orientation     math64.Quaternion
	LinearVelocity  math64.Vec3
	AngularVelocity math64.Vec3
}

// ForceAccumulator is the net external force and torque on a body at an
// instant.
type ForceAccumulator struct {
	Force  math64.Vec3
	Torque math64.Vec3
}

// Derivative is the time derivative of a State. Note that the angular slot
// stores angular acceleration (alpha = domega/dt), not torque: RK4 must
// average four commensurate derivatives of omega, and alpha is that
// derivative.
type Derivative struct {
	Velocity            math64.Vec3
	Force               math64.Vec3
	Spin                math64.Quaternion
	AngularAcceleration math64.Vec3
}

// Body is a rigid disc: a State plus the body-fixed mass properties needed
// to integrate and collide it. The inertia tensor is built once at
// construction from a cylinder-about-disc-axis model and never mutated
// afterwards.
type Body struct {
	State

	Mass      float64
	Radius    float64
	Thickness float64

	inertiaBody    math64.Mat3
	invInertiaBody math64.Mat3
}

// NewBody constructs a coin-shaped rigid body: a cylinder of the given mass,
// radius and thickness, spinning about its Y (face-normal) axis in its own
// body frame. Fails if the resulting inertia tensor is singular.
func NewBody(mass, radius, thickness float64, state State) (*Body, error) {
	iyy := 0.5 * mass * radius * radius
	ixxzz := (1.0 / 12.0) * mass * (3*radius*radius + thickness*thickness)
	inertia := math64.Diagonal3(ixxzz, iyy, ixxzz)

	invInertia, err := inertia.Inverse()
	if err != nil {
		return nil, &SingularInertiaError{Mass: mass, Radius: radius, Thickness: thickness}
	}

	return &Body{
		State:          state,
		Mass:           mass,
		Radius:         radius,
		Thickness:      thickness,
		inertiaBody:    inertia,
		invInertiaBody: invInertia,
	}, nil
}

// NewBodyWithInertia constructs a rigid body directly from an arbitrary
// body-frame inertia tensor, bypassing the coin-shape model. Used for
// calibration and for exercising the integrator's gyroscopic term against
// an arbitrary asymmetric inertia tensor independent of any physical disc.
func NewBodyWithInertia(mass float64, inertia math64.Mat3, state State) (*Body, error) {
	invInertia, err := inertia.Inverse()
	if err != nil {
		return nil, &SingularInertiaError{Mass: mass}
	}
	return &Body{
		State:          state,
		Mass:           mass,
		inertiaBody:    inertia,
		invInertiaBody: invInertia,
	}, nil
}

// InertiaBody returns the body-frame inertia tensor. It is never mutated
// after construction.
func (b *Body) InertiaBody() math64.Mat3 { return b.inertiaBody }

// InvInertiaBody returns the body-frame inverse inertia tensor.
func (b *Body) InvInertiaBody() math64.Mat3 { return b.invInertiaBody }

// InertiaWorld returns the inertia tensor rotated into world space for the
// body's current orientation: I_world = R * I_body * R^T.
func (b *Body) InertiaWorld() math64.Mat3 {
	r := b.Orientation.Mat3()
	return r.Mul(b.inertiaBody).Mul(r.Transpose())
}

// InvInertiaWorld returns the inverse inertia tensor rotated into world
// space: I^-1_world = R * I^-1_body * R^T.
func (b *Body) InvInertiaWorld() math64.Mat3 {
	r := b.Orientation.Mat3()
	return r.Mul(b.invInertiaBody).Mul(r.Transpose())
}

// SingularInertiaError is returned by NewBody when the requested mass,
// radius and thickness would produce a non-invertible inertia tensor.
type SingularInertiaError struct {
	Mass, Radius, Thickness float64
}

func (e *SingularInertiaError) Error() string {
	return errSingularInertiaPrefix + "mass/radius/thickness combination yields a singular inertia tensor"
}

const errSingularInertiaPrefix = "physics: "
