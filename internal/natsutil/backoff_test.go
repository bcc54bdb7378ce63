package natsutil

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func stddev(durs []time.Duration) time.Duration {
	if len(durs) == 0 {
		return 0
	}
	vals := make([]float64, len(durs))
	var sum float64
	for i, d := range durs {
		vals[i] = d.Seconds()
		sum += vals[i]
	}
	mean := sum / float64(len(vals))

	var varSum float64
	for _, v := range vals {
		varSum += (v - mean) * (v - mean)
	}

	return time.Duration(math.Sqrt(varSum/float64(len(vals))) * float64(time.Second))
}

func TestNextBackoff(t *testing.T) {
	t.Run("starts at base", func(t *testing.T) {
		require.Equal(t, 200*time.Millisecond, NextBackoff(0, 200*time.Millisecond, 1.6, time.Second, nil))
		require.Equal(t, DefaultBackoffBase, NextBackoff(0, 0, 2, 0, nil))
	})

	t.Run("stays within base and cap", func(t *testing.T) {
		base := 200 * time.Millisecond
		capDur := 500 * time.Millisecond
		rng := NewRetryRNG(42)

		prev := time.Duration(0)
		for range 10 {
			next := NextBackoff(prev, base, 1.6, capDur, rng)
			require.GreaterOrEqual(t, next, base)
			require.LessOrEqual(t, next, capDur)
			prev = next
		}
	})

	t.Run("cap below base wins", func(t *testing.T) {
		base := 200 * time.Millisecond
		capDur := 100 * time.Millisecond
		rng := NewRetryRNG(1)

		require.Equal(t, capDur, NextBackoff(0, base, 1.6, capDur, rng))
		require.Equal(t, capDur, NextBackoff(base, base, 1.6, capDur, rng))
	})

	t.Run("same seed gives same sequence", func(t *testing.T) {
		a, b := NewRetryRNG(7), NewRetryRNG(7)
		prevA, prevB := time.Duration(0), time.Duration(0)
		for range 8 {
			prevA = NextBackoff(prevA, DefaultBackoffBase, DefaultBackoffMultiplier, DefaultBackoffCap, a)
			prevB = NextBackoff(prevB, DefaultBackoffBase, DefaultBackoffMultiplier, DefaultBackoffCap, b)
			require.Equal(t, prevA, prevB)
		}
	})

	t.Run("varies across seeds", func(t *testing.T) {
		lasts := make([]time.Duration, 0, 5)
		for s := int64(1); s <= 5; s++ {
			prev := time.Duration(0)
			rng := NewRetryRNG(s)
			for range 12 {
				prev = NextBackoff(prev, 200*time.Millisecond, 1.6, 2*time.Second, rng)
			}
			lasts = append(lasts, prev)
		}

		require.GreaterOrEqual(t, stddev(lasts), 50*time.Millisecond)
	})
}

func TestNewRetryRNG(t *testing.T) {
	require.Nil(t, NewRetryRNG(0))
	require.NotNil(t, NewRetryRNG(3))
}
