// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/rohit-kuinkel1/flip-coin/math64"

// PenetrationTolerance is the default depth below which a penetration is
// reported as non-colliding, to suppress resting-contact jitter.
const PenetrationTolerance = 1e-4

// GroundNormal is the fixed normal of the ground plane y=0.
var GroundNormal = math64.Vec3Up

// CollisionResult is the outcome of a collision test: whether the body
// penetrates the ground, and if so by how much, along which normal, and at
// which contact point.
type CollisionResult struct {
	Colliding        bool
	Normal           math64.Vec3
	PenetrationDepth float64
	ContactPoint     math64.Vec3
}

// Detect models the ground as the implicit plane y=0 and the coin as a disc
// of thickness b.Thickness: its two face centers in world space are
// position +/- (thickness/2)*normal, where normal = orientation * (0,1,0).
// The lower face center is the one with the smaller y. Collision is
// reported only when the lower face's penetration below the plane exceeds
// tolerance, and PenetrationDepth is that exceedance (penetration minus
// tolerance), not the raw penetration; the contact point is the lower face
// center projected onto y=0 (x and z preserved).
//
// Radius is deliberately not used in the contact-point solve. This
// approximates the rim-contact case for a tilted disc by the face-center
// test only; a reimplementation could refine this to a true rim
// intersection, but per the open design question this is left as-is and
// must not silently change.
func Detect(b *Body, tolerance float64) CollisionResult {
	normal := b.Orientation.RotateVector(math64.Vec3Up)
	half := b.Thickness / 2

	faceA := b.Position.Add(normal.Scale(half))
	faceB := b.Position.Sub(normal.Scale(half))

	lower := faceA
	if faceB.Y < faceA.Y {
		lower = faceB
	}

	penetration := 0 - lower.Y
	if penetration <= tolerance {
		return CollisionResult{Colliding: false}
	}

	return CollisionResult{
		Colliding:        true,
		Normal:           GroundNormal,
		PenetrationDepth: penetration - tolerance,
		ContactPoint:     math64.Vec3{X: lower.X, Y: 0, Z: lower.Z},
	}
}
