// Command flipcoin is a minimal demonstration entry point for the core
// simulation engine. The CLI itself is explicitly out of scope for the
// kernel (spec §1); this binary exists only to exercise coin.FlipCoin from
// the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rohit-kuinkel1/flip-coin/coin"
	"github.com/rohit-kuinkel1/flip-coin/entropy"
	"github.com/rohit-kuinkel1/flip-coin/util/logger"
)

func main() {
	level := flag.String("level", "standard", "entropy level: fast, standard, high, paranoid")
	timeoutMs := flag.Int64("timeout-ms", 10000, "wall-clock timeout per attempt, in milliseconds")
	retries := flag.Int("max-edge-retries", 5, "maximum EDGE retries before failing")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetLevel(zerolog.DebugLevel)
	}

	entropyLevel, err := parseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	options := coin.DefaultFlipOptions()
	options.EntropyLevel = entropyLevel
	options.TimeoutMs = *timeoutMs
	options.MaxEdgeRetries = *retries

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutMs)*time.Millisecond*2)
	defer cancel()

	result, err := coin.FlipCoin(ctx, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flip failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (sim=%.2fms, bounces=%d, retries=%d, entropy_bits=%d)\n",
		result.Outcome,
		result.Stats.SimulationTimeMs,
		result.Stats.BounceCount,
		result.Stats.RetryCount,
		result.Stats.EntropyBitsUsed,
	)
}

func parseLevel(s string) (entropy.Level, error) {
	switch s {
	case "fast":
		return entropy.Fast, nil
	case "standard":
		return entropy.Standard, nil
	case "high":
		return entropy.High, nil
	case "paranoid":
		return entropy.Paranoid, nil
	default:
		return 0, fmt.Errorf("unknown entropy level %q", s)
	}
}
