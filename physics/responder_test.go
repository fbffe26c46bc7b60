package physics

import (
	"testing"

	"github.com/rohit-kuinkel1/flip-coin/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Q9: for normal incidence with e=0.5 and pre-collision v_n = -v, the
// post-collision v_n must be 0.5*v within 1e-5.
func TestRespond_RestitutionBound(t *testing.T) {
	const v = 2.0
	b, err := NewBody(0.00567, 0.01213, 0.0, State{
		Position:       math64.Vec3{X: 0, Y: 0, Z: 0},
		Orientation:    math64.QuaternionIdentity,
		LinearVelocity: math64.Vec3{X: 0, Y: -v, Z: 0},
	})
	require.NoError(t, err)

	c := CollisionResult{
		Colliding:        true,
		Normal:           math64.Vec3Up,
		PenetrationDepth: 0,
		ContactPoint:     math64.Vec3{X: 0, Y: 0, Z: 0},
	}
	Respond(b, c, Material{Friction: 0, Restitution: 0.5})

	vn := b.LinearVelocity.Dot(math64.Vec3Up)
	assert.InDelta(t, 0.5*v, vn, 1e-5)
}

// Q10: post-collision tangential velocity magnitude must not exceed the
// pre-collision tangential magnitude, and must keep the same sign
// (direction).
func TestRespond_FrictionNeverReversesTangent(t *testing.T) {
	b, err := NewBody(0.00567, 0.01213, 0.0, State{
		Position:       math64.Vec3{X: 0, Y: 0, Z: 0},
		Orientation:    math64.QuaternionIdentity,
		LinearVelocity: math64.Vec3{X: 3, Y: -1, Z: 0},
	})
	require.NoError(t, err)

	n := math64.Vec3Up
	vPointBefore := b.LinearVelocity
	vtBefore := vPointBefore.Sub(n.Scale(vPointBefore.Dot(n)))

	c := CollisionResult{
		Colliding:        true,
		Normal:           n,
		PenetrationDepth: 0,
		ContactPoint:     math64.Vec3{X: 0, Y: 0, Z: 0},
	}
	Respond(b, c, Material{Friction: 0.8, Restitution: 0.3})

	vPointAfter := b.LinearVelocity
	vtAfter := vPointAfter.Sub(n.Scale(vPointAfter.Dot(n)))

	assert.LessOrEqual(t, vtAfter.Length(), vtBefore.Length()+1e-9)
	if vtBefore.Length() > 1e-9 && vtAfter.Length() > 1e-9 {
		assert.Greater(t, vtAfter.Normalize().Dot(vtBefore.Normalize()), 0.0)
	}
}

func TestRespond_NonCollidingIsNoop(t *testing.T) {
	b, err := NewBody(0.00567, 0.01213, 0.0, State{
		LinearVelocity: math64.Vec3{X: 1, Y: -1, Z: 1},
	})
	require.NoError(t, err)
	before := b.State
	Respond(b, CollisionResult{Colliding: false}, DefaultMaterial())
	assert.Equal(t, before, b.State)
}
