package coin

import (
	"github.com/google/uuid"

	"github.com/rohit-kuinkel1/flip-coin/physics"
)

// Outcome is the externally observable result of a flip. EDGE is never
// exposed here: FlipCoin retries through it, DebugFlipCoin errors on it.
type Outcome int

const (
	Heads Outcome = iota
	Tails
)

// String renders the outcome name, used in log fields and result printing.
func (o Outcome) String() string {
	if o == Heads {
		return "heads"
	}
	return "tails"
}

// FlipStats describes how the winning attempt ran.
type FlipStats struct {
	SimulationTimeMs float64
	EntropyBitsUsed  int
	BounceCount      int
	RetryCount       int
}

// FlipResult is FlipCoin's return value.
type FlipResult struct {
	Outcome Outcome
	Stats   FlipStats
}

// DebugFlipResult is DebugFlipCoin's return value: a FlipResult plus the
// debug-only collaborators.
type DebugFlipResult struct {
	FlipResult

	RunID             uuid.UUID
	Seed              []byte
	InitialConditions physics.State

	// Trajectory is nil unless the caller requested RecordTrajectory.
	Trajectory []physics.State
}

func faceToOutcome(f faceOutcome) Outcome {
	if f == faceHeads {
		return Heads
	}
	return Tails
}
