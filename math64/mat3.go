// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"errors"
	"math"
)

// singularDeterminant is the threshold below which a Mat3 is treated as
// non-invertible. It must stay small: physically valid inertia tensors for
// light bodies (e.g. a coin) can have determinants on the order of 1e-24,
// and those are not singular.
const singularDeterminant = 1e-6

// Mat3 is an immutable 3x3 matrix stored row-major: m[3*row+col].
type Mat3 struct {
	m [9]float64
}

// NewMat3 builds a Mat3 from its nine row-major elements.
func NewMat3(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) Mat3 {
	return Mat3{m: [9]float64{n11, n12, n13, n21, n22, n23, n31, n32, n33}}
}

// Identity3 is the 3x3 identity matrix.
var Identity3 = Diagonal3(1, 1, 1)

// Diagonal3 builds a diagonal matrix from the given entries.
func Diagonal3(a, b, c float64) Mat3 {
	return NewMat3(
		a, 0, 0,
		0, b, 0,
		0, 0, c,
	)
}

// At returns the element at the given row and column (0-indexed).
func (m Mat3) At(row, col int) float64 {
	return m.m[3*row+col]
}

// Add returns m + other.
func (m Mat3) Add(other Mat3) Mat3 {
	var r Mat3
	for i := range m.m {
		r.m[i] = m.m[i] + other.m[i]
	}
	return r
}

// Sub returns m - other.
func (m Mat3) Sub(other Mat3) Mat3 {
	var r Mat3
	for i := range m.m {
		r.m[i] = m.m[i] - other.m[i]
	}
	return r
}

// Scale returns m scaled by s.
func (m Mat3) Scale(s float64) Mat3 {
	var r Mat3
	for i := range m.m {
		r.m[i] = m.m[i] * s
	}
	return r
}

// Mul returns the matrix product m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.At(row, k) * other.At(k, col)
			}
			r.m[3*row+col] = sum
		}
	}
	return r
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m.m[0]*v.X + m.m[1]*v.Y + m.m[2]*v.Z,
		Y: m.m[3]*v.X + m.m[4]*v.Y + m.m[5]*v.Z,
		Z: m.m[6]*v.X + m.m[7]*v.Y + m.m[8]*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return NewMat3(
		m.m[0], m.m[3], m.m[6],
		m.m[1], m.m[4], m.m[7],
		m.m[2], m.m[5], m.m[8],
	)
}

// Trace returns the sum of the diagonal elements of m.
func (m Mat3) Trace() float64 {
	return m.m[0] + m.m[4] + m.m[8]
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float64 {
	a, b, c := m.m[0], m.m[1], m.m[2]
	d, e, f := m.m[3], m.m[4], m.m[5]
	g, h, i := m.m[6], m.m[7], m.m[8]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse of m. Singularity is judged on the
// scale-normalized determinant (det / scale^3, where scale is the mean
// absolute element) against the fixed 1e-6 threshold, not on the raw
// determinant: a light body's inertia tensor is physically valid and
// invertible with a raw determinant as small as 1e-24, and that threshold
// must not be raised to exclude it. A matrix that is actually rank-deficient
// has a near-zero normalized determinant regardless of its overall scale.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()

	var scale float64
	for _, v := range m.m {
		scale += math.Abs(v)
	}
	scale /= float64(len(m.m))

	if scale == 0 {
		return Mat3{}, errors.New("math64: matrix is singular")
	}
	normalizedDet := det / (scale * scale * scale)
	if math.Abs(normalizedDet) < singularDeterminant {
		return Mat3{}, errors.New("math64: matrix is singular")
	}

	a, b, c := m.m[0], m.m[1], m.m[2]
	d, e, f := m.m[3], m.m[4], m.m[5]
	g, h, i := m.m[6], m.m[7], m.m[8]

	invDet := 1 / det
	return NewMat3(
		(e*i-f*h)*invDet, (c*h-b*i)*invDet, (b*f-c*e)*invDet,
		(f*g-d*i)*invDet, (a*i-c*g)*invDet, (c*d-a*f)*invDet,
		(d*h-e*g)*invDet, (b*g-a*h)*invDet, (a*e-b*d)*invDet,
	), nil
}

// Skew3 builds the skew-symmetric cross-product matrix for v, such that
// Skew3(v).MulVec3(w) == v.Cross(w) for all w.
func Skew3(v Vec3) Mat3 {
	return NewMat3(
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	)
}

// RotationX3 returns the matrix for a right-handed rotation of angle radians
// about the X axis.
func RotationX3(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return NewMat3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationY3 returns the matrix for a right-handed rotation of angle radians
// about the Y axis.
func RotationY3(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return NewMat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZ3 returns the matrix for a right-handed rotation of angle radians
// about the Z axis.
func RotationZ3(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}
