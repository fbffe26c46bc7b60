package coin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rohit-kuinkel1/flip-coin/entropy"
	"github.com/rohit-kuinkel1/flip-coin/physics"
	"github.com/rohit-kuinkel1/flip-coin/util/logger"
)

const (
	// fixedTimestep is the mandatory 10kHz integration step. The integrator's
	// error analysis and the collision tolerances assume exactly this value.
	fixedTimestep = 1e-4

	// consecutiveStableStepsRequired is how many back-to-back stable steps
	// the controller demands before classifying a face.
	consecutiveStableStepsRequired = 10

	// nearGroundDamping is the intentional, non-physical energy sink applied
	// to velocities while the body's center is below its own radius. It
	// guarantees bounded settling time and must be preserved.
	nearGroundDamping = 0.8

	// sufficientEntropyBytes is how many bytes the sampler's five Gaussian
	// draws need (5 * 8 = 40) plus headroom before the reader's
	// cursor-exhaustion fallback would engage.
	sufficientEntropyBytes = 64
)

// FlipCoin runs the simulation to a definite HEADS/TAILS outcome, acquiring
// fresh entropy and retrying on EDGE up to options.MaxEdgeRetries times.
func FlipCoin(ctx context.Context, options FlipOptions) (FlipResult, error) {
	options = fillDefaults(options)

	for attempt := 0; attempt <= options.MaxEdgeRetries; attempt++ {
		res, err := runAttempt(ctx, options, nil, nil, false)
		if err != nil {
			return FlipResult{}, err
		}
		if res.face == faceEdge {
			logger.Log.Debug().
				Int("attempt", attempt).
				Msg("coin settled on edge, retrying with fresh entropy")
			continue
		}

		return FlipResult{
			Outcome: faceToOutcome(res.face),
			Stats: FlipStats{
				SimulationTimeMs: res.simTimeMs,
				EntropyBitsUsed:  res.entropyBits,
				BounceCount:      res.bounces,
				RetryCount:       attempt,
			},
		}, nil
	}

	return FlipResult{}, &EdgeRetryExhaustedError{MaxRetries: options.MaxEdgeRetries}
}

// DebugFlipCoin runs exactly one attempt, bypassing edge retries entirely: a
// settle on EDGE is an error here, not a trigger for another attempt. A
// non-nil Seed bypasses the entropy collector; a non-nil InitialConditions
// overrides individual sampled fields; RecordTrajectory captures every step.
func DebugFlipCoin(ctx context.Context, options DebugFlipOptions) (DebugFlipResult, error) {
	opts := fillDefaults(options.FlipOptions)

	res, err := runAttempt(ctx, opts, options.Seed, options.InitialConditions, options.RecordTrajectory)
	if err != nil {
		return DebugFlipResult{}, err
	}
	if res.face == faceEdge {
		return DebugFlipResult{}, &EdgeClassificationError{}
	}

	return DebugFlipResult{
		FlipResult: FlipResult{
			Outcome: faceToOutcome(res.face),
			Stats: FlipStats{
				SimulationTimeMs: res.simTimeMs,
				EntropyBitsUsed:  res.entropyBits,
				BounceCount:      res.bounces,
			},
		},
		RunID:             uuid.New(),
		Seed:              res.seed,
		InitialConditions: res.initialState,
		Trajectory:        res.trajectory,
	}, nil
}

func fillDefaults(o FlipOptions) FlipOptions {
	if o.Collector == nil {
		o.Collector = entropy.OSCollector{}
	}
	if o.TimeoutMs == 0 {
		o.TimeoutMs = 10000
	}
	if o.MaxEdgeRetries == 0 {
		o.MaxEdgeRetries = 5
	}
	if (o.CoinConfig == CoinConfig{}) {
		o.CoinConfig = DefaultCoinConfig()
	}
	return o
}

// attemptResult is the internal outcome of one simulated attempt, carrying
// everything both FlipCoin and DebugFlipCoin need to assemble their public
// result types.
type attemptResult struct {
	face         faceOutcome
	initialState physics.State
	seed         []byte
	trajectory   []physics.State
	simTimeMs    float64
	entropyBits  int
	bounces      int
}

// runAttempt is the single-attempt body of the controller algorithm:
// collect or accept entropy, sample or override an initial state, build a
// body, then loop force model -> integrate -> near-ground damping -> detect
// -> respond -> stability check at the fixed timestep until either
// consecutiveStableStepsRequired consecutive stable steps are seen or the
// wall-clock timeout elapses.
func runAttempt(ctx context.Context, options FlipOptions, seedOverride []byte, overrides *InitialConditionOverrides, recordTraj bool) (attemptResult, error) {
	var seed []byte
	var entropyBits int

	if seedOverride != nil {
		seed = seedOverride
	} else {
		sample, err := options.Collector.Collect(ctx, options.EntropyLevel)
		if err != nil {
			return attemptResult{}, &EntropyCollectionError{Err: err}
		}
		seed = sample.Bytes
		entropyBits = sample.Stats.TotalBits
	}

	mixed := entropy.Mix(seed)
	expanded, err := entropy.Expand(mixed, sufficientEntropyBytes)
	if err != nil {
		return attemptResult{}, &EntropyCollectionError{Err: err}
	}

	reader := entropy.NewReader(expanded)
	params := mapTossProfile(options.TossProfile)
	state := sampleInitialState(reader, params)
	state = applyOverrides(state, overrides)
	initialState := state

	body, err := physics.NewBody(options.CoinConfig.Mass, options.CoinConfig.Radius, options.CoinConfig.Thickness, state)
	if err != nil {
		return attemptResult{}, err
	}

	var traj *Trajectory
	if recordTraj {
		traj = newTrajectory()
	}

	forceCfg := physics.DefaultForceConfig()
	stabilityCfg := physics.DefaultStabilityConfig(options.CoinConfig.Radius)
	material := physics.DefaultMaterial()

	stableSteps := 0
	bounces := 0
	steps := 0
	start := time.Now()
	timeout := time.Duration(options.TimeoutMs) * time.Millisecond

	for time.Since(start) < timeout {
		body.Step(fixedTimestep, forceCfg)
		steps++

		if body.Position.Y < options.CoinConfig.Radius {
			body.LinearVelocity = body.LinearVelocity.Scale(nearGroundDamping)
			body.AngularVelocity = body.AngularVelocity.Scale(nearGroundDamping)
		}

		c := physics.Detect(body, physics.PenetrationTolerance)
		physics.Respond(body, c, material)
		if c.Colliding {
			bounces++
		}

		if physics.IsStable(body, stabilityCfg) {
			stableSteps++
		} else {
			stableSteps = 0
		}

		traj.record(body.State)

		if stableSteps >= consecutiveStableStepsRequired {
			break
		}
	}

	elapsed := time.Since(start)
	if stableSteps < consecutiveStableStepsRequired {
		return attemptResult{}, &SimulationTimeoutError{
			TimeoutMs: options.TimeoutMs,
			ElapsedMs: elapsed.Milliseconds(),
		}
	}

	return attemptResult{
		face:         evaluateFace(body),
		initialState: initialState,
		seed:         seed,
		trajectory:   traj.Samples(),
		simTimeMs:    float64(steps) * fixedTimestep * 1000,
		entropyBits:  entropyBits,
		bounces:      bounces,
	}, nil
}
