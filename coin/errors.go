package coin

import "fmt"

// SimulationTimeoutError is returned when an attempt's wall-clock budget is
// exhausted before the body settles to 10 consecutive stable steps. The
// controller never guesses an outcome in this case.
type SimulationTimeoutError struct {
	TimeoutMs int64
	ElapsedMs int64
}

func (e *SimulationTimeoutError) Error() string {
	return fmt.Sprintf("coin: simulation did not settle within %dms (elapsed %dms)", e.TimeoutMs, e.ElapsedMs)
}

// EdgeRetryExhaustedError is returned when every attempt up to maxEdgeRetries
// classified as EDGE.
type EdgeRetryExhaustedError struct {
	MaxRetries int
}

func (e *EdgeRetryExhaustedError) Error() string {
	return fmt.Sprintf("coin: exhausted %d edge retries without a definite outcome", e.MaxRetries)
}

// EntropyCollectionError wraps a failure propagated from the entropy
// collaborator. The kernel never fabricates randomness to route around it.
type EntropyCollectionError struct {
	Err error
}

func (e *EntropyCollectionError) Error() string {
	return "coin: entropy collection failed: " + e.Err.Error()
}

func (e *EntropyCollectionError) Unwrap() error { return e.Err }

// EdgeClassificationError is surfaced only from DebugFlipCoin, which
// bypasses the edge-retry loop: a single attempt settling on EDGE is an
// error at this entry point rather than a trigger for a fresh attempt.
type EdgeClassificationError struct{}

func (e *EdgeClassificationError) Error() string {
	return "coin: simulation settled on EDGE"
}
