package coin

import (
	"github.com/rohit-kuinkel1/flip-coin/math64"
	"github.com/rohit-kuinkel1/flip-coin/physics"
)

// edgeThreshold is the dot-product band around zero classified as EDGE.
const edgeThreshold = 0.1

// faceOutcome is the internal three-way classification; EDGE is never
// exposed outside this package (it is retried or surfaced as an error, per
// the caller-facing Outcome type).
type faceOutcome int

const (
	faceHeads faceOutcome = iota
	faceTails
	faceEdge
)

// evaluateFace classifies a settled body by the y-component of its
// world-space face normal against edgeThreshold.
func evaluateFace(b *physics.Body) faceOutcome {
	normal := b.Orientation.RotateVector(math64.Vec3Up)
	align := normal.Y

	switch {
	case align > edgeThreshold:
		return faceHeads
	case align < -edgeThreshold:
		return faceTails
	default:
		return faceEdge
	}
}
