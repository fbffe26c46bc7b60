// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/rohit-kuinkel1/flip-coin/math64"
)

// microCollisionThreshold is the normal-velocity gate below which restitution
// is treated as zero, to kill infinite micro-bouncing.
const microCollisionThreshold = -0.1

// Respond applies an instantaneous impulse at c's contact point plus a
// positional projection, given the body's material. It is a no-op when c is
// non-colliding.
func Respond(b *Body, c CollisionResult, mat Material) {
	if !c.Colliding {
		return
	}

	r := c.ContactPoint.Sub(b.Position)
	n := c.Normal

	vPoint := b.LinearVelocity.Add(b.AngularVelocity.Cross(r))
	vnScalar := vPoint.Dot(n)
	vn := n.Scale(vnScalar)
	vt := vPoint.Sub(vn)

	invMass := 1.0 / b.Mass
	invInertiaWorld := b.InvInertiaWorld()
	rCrossN := r.Cross(n)
	angularTerm := invInertiaWorld.MulVec3(rCrossN).Dot(rCrossN)

	var impulse math64.Vec3

	if vnScalar < 0 {
		restitution := mat.Restitution
		if vnScalar > microCollisionThreshold {
			restitution = 0
		}
		jn := -(1 + restitution) * vnScalar / (invMass + angularTerm)
		impulse = impulse.Add(n.Scale(jn))

		if vt.LengthSq() > 1e-12 {
			tangent := vt.Normalize()
			jtMag := mat.Friction * math.Abs(jn)
			// Coulomb friction impulse must not exceed the impulse that
			// would reverse the tangential motion; clamp its magnitude to
			// the tangential momentum it is opposing so it can never change
			// sign of the tangential component.
			maxJtMag := vt.Length() / (invMass + angularTerm)
			if jtMag > maxJtMag {
				jtMag = maxJtMag
			}
			impulse = impulse.Add(tangent.Scale(-jtMag))
		}
	}

	b.LinearVelocity = b.LinearVelocity.Add(impulse.Scale(invMass))
	b.AngularVelocity = b.AngularVelocity.Add(invInertiaWorld.MulVec3(r.Cross(impulse)))

	if c.PenetrationDepth > 0 {
		b.Position = b.Position.Add(n.Scale(c.PenetrationDepth))
	}
}

