// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import "math"

// signSnapTolerance is how close a canonicalized quaternion component must
// be to zero before it is snapped to exact zero, to suppress -0 propagation
// through repeated normalization.
const signSnapTolerance = 1e-6

// QuaternionIdentity is the identity rotation.
var QuaternionIdentity = Quaternion{W: 1}

// Quaternion is an immutable unit-convention rotation quaternion with W,
// X, Y, Z components (W is the scalar part).
type Quaternion struct {
	W, X, Y, Z float64
}

// NewQuaternion returns a new quaternion with the given components.
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// QuaternionFromAxisAngle returns the unit quaternion for a rotation of
// angle radians about axis. The axis is normalized internally.
func QuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	a := axis.Normalize()
	half := angle / 2
	s := math.Sin(half)
	return Quaternion{W: math.Cos(half), X: a.X * s, Y: a.Y * s, Z: a.Z * s}.Normalize()
}

// AxisAngle returns the unit rotation axis and the rotation angle of q.
func (q Quaternion) AxisAngle() (axis Vec3, angle float64) {
	qn := q.Normalize()
	angle = 2 * math.Acos(clamp(qn.W, -1, 1))
	s := math.Sqrt(1 - qn.W*qn.W)
	if s < 1e-8 {
		return Vec3Up, angle
	}
	return Vec3{qn.X / s, qn.Y / s, qn.Z / s}, angle
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// LengthSq returns the squared magnitude of q.
func (q Quaternion) LengthSq() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Length returns the magnitude of q.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.LengthSq())
}

// Normalize returns q scaled to unit length, canonicalized so W >= 0, with
// components within signSnapTolerance of zero snapped to exact zero. The
// identity quaternion is returned for a zero-magnitude input.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return QuaternionIdentity
	}
	r := Quaternion{q.W / l, q.X / l, q.Y / l, q.Z / l}
	if r.W < 0 {
		r = Quaternion{-r.W, -r.X, -r.Y, -r.Z}
	}
	snap := func(v float64) float64 {
		if math.Abs(v) < signSnapTolerance {
			return 0
		}
		return v
	}
	return Quaternion{snap(r.W), snap(r.X), snap(r.Y), snap(r.Z)}
}

// Conjugate returns the conjugate of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Inverse returns the multiplicative inverse of q, or the zero quaternion
// when q's squared magnitude is below 1e-6.
func (q Quaternion) Inverse() Quaternion {
	lsq := q.LengthSq()
	if lsq < 1e-6 {
		return Quaternion{}
	}
	c := q.Conjugate()
	invLsq := 1 / lsq
	return Quaternion{c.W * invLsq, c.X * invLsq, c.Y * invLsq, c.Z * invLsq}
}

// Mul returns the Hamilton product q * other.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Add returns q + other component-wise. Used only to average RK4 stage
// derivatives; the result is not itself a unit quaternion until normalized.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.W + other.W, q.X + other.X, q.Y + other.Y, q.Z + other.Z}
}

// Scale returns q scaled by s component-wise.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// RotateVector rotates v by q via the sandwich product q (0,v) q*.
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	p := Quaternion{0, v.X, v.Y, v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}

// Derivative returns dq/dt = 1/2 * (0, omega) (x) q for the given world-frame
// angular velocity omega.
func (q Quaternion) Derivative(omega Vec3) Quaternion {
	omegaQ := Quaternion{0, omega.X, omega.Y, omega.Z}
	return omegaQ.Mul(q).Scale(0.5)
}

// Mat3 returns the 3x3 rotation matrix equivalent to q. q is assumed unit.
func (q Quaternion) Mat3() Mat3 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return NewMat3(
		1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy),
	)
}
