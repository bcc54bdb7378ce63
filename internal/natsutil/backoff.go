package natsutil

import (
	rand "math/rand/v2"
	"time"
)

// Default retry pacing for publish attempts against a flaky connection.
const (
	DefaultBackoffBase       = 50 * time.Millisecond
	DefaultBackoffMultiplier = 2.0
	DefaultBackoffCap        = time.Second
)

// NextBackoff returns the delay before the next retry using decorrelated
// jitter with a cap.
//
// The next delay is drawn from [base, prev*mult) and clamped to capDur:
//   - prev <= 0 starts from base
//   - mult < 1.0 is treated as 1.0 (no growth)
//   - capDur > 0 and capDur < base always returns capDur
//
// Parameters:
//   - prev: Previous delay (0 on the first retry)
//   - base: Minimum delay (50ms when <= 0)
//   - mult: Growth factor applied to prev
//   - capDur: Upper bound (0 for none)
//   - rng: Jitter source; nil uses the package-level generator
//
// Returns:
//   - time.Duration: Delay to wait before the next attempt
func NextBackoff(prev, base time.Duration, mult float64, capDur time.Duration, rng *rand.Rand) time.Duration {
	if base <= 0 {
		base = DefaultBackoffBase
	}
	if mult < 1.0 {
		mult = 1.0
	}
	if capDur > 0 && capDur < base {
		return capDur
	}
	if prev <= 0 {
		return base
	}

	span := time.Duration(float64(prev)*mult) - base
	if span <= 0 {
		span = base
	}

	var jitter int64
	if rng != nil {
		jitter = rng.Int64N(int64(span))
	} else {
		jitter = rand.Int64N(int64(span)) //nolint:gosec // non-crypto backoff jitter
	}

	next := base + time.Duration(jitter)
	if capDur > 0 && next > capDur {
		return capDur
	}

	return next
}

// NewRetryRNG returns a deterministic generator for a non-zero seed and nil
// for seed 0, so NextBackoff falls back to the package-level generator.
//
//nolint:gosec
func NewRetryRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	s1 := uint64(seed)
	s2 := s1 ^ 0x9e3779b97f4a7c15

	return rand.New(rand.NewPCG(s1, s2))
}
