package quality

import (
	"context"
	"sync"
	"testing"

	"github.com/arloliu/hype/partition"
	hypetest "github.com/arloliu/hype/testing"
	"github.com/arloliu/hype/types"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	mu        sync.Mutex
	durations map[string]int
	quality   []types.Quality
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{durations: make(map[string]int)}
}

func (m *recordingMetrics) RecordElementAssigned(int, int) {}
func (m *recordingMetrics) RecordStreamingDuration(float64, int) {}

func (m *recordingMetrics) RecordMetricDuration(metric string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[metric]++
}

func (m *recordingMetrics) RecordQuality(q types.Quality) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quality = append(m.quality, q)
}

func TestEvaluate(t *testing.T) {
	t.Run("disjoint partitions", func(t *testing.T) {
		q, err := Evaluate(t.Context(), disjoint())
		require.NoError(t, err)
		require.Equal(t, types.Quality{
			SumOfExternalDegrees: 0,
			HyperedgeCut:         0,
			KMinus1:              0,
			NodeBalancing:        0.5,
			EdgeBalancing:        0.5,
		}, q)
	})

	t.Run("overlapping", func(t *testing.T) {
		q, err := Evaluate(t.Context(), overlapping(), WithConcurrency(1))
		require.NoError(t, err)
		require.Equal(t, 5, q.SumOfExternalDegrees)
		require.Equal(t, 2, q.HyperedgeCut)
		require.Equal(t, 3, q.KMinus1)
		require.Zero(t, q.NodeBalancing)
		require.InDelta(t, 1.0/3.0, q.EdgeBalancing, 1e-12)
	})

	t.Run("empty partitions give guarded zeros", func(t *testing.T) {
		parts := []*partition.Partition{partition.New(0), partition.New(1), partition.New(2)}

		q, err := Evaluate(t.Context(), parts)
		require.NoError(t, err)
		require.Equal(t, types.Quality{}, q)
	})

	t.Run("records durations and final scores", func(t *testing.T) {
		mc := newRecordingMetrics()
		logger := hypetest.NewRecordingLogger()

		q, err := Evaluate(t.Context(), overlapping(), WithMetrics(mc), WithLogger(logger))
		require.NoError(t, err)

		require.Equal(t, map[string]int{
			types.MetricSumOfExternalDegrees: 1,
			types.MetricHyperedgeCut:         1,
			types.MetricKMinus1:              1,
			types.MetricNodeBalancing:        1,
			types.MetricEdgeBalancing:        1,
		}, mc.durations)
		require.Equal(t, []types.Quality{q}, mc.quality)
		require.Equal(t, 5, logger.Count("DEBUG", "metric computed"))
	})

	t.Run("canceled context", func(t *testing.T) {
		mc := newRecordingMetrics()

		_, err := Evaluate(canceled(), overlapping(), WithMetrics(mc))
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, mc.quality)
	})

	t.Run("does not modify partitions", func(t *testing.T) {
		parts := generated(6, 25)
		before := partition.Fingerprint(parts)
		edges := make([]int, len(parts))
		for i, p := range parts {
			edges[i] = p.NumberOfEdges()
		}

		_, err := Evaluate(t.Context(), parts)
		require.NoError(t, err)

		require.Equal(t, before, partition.Fingerprint(parts))
		for i, p := range parts {
			require.Equal(t, edges[i], p.NumberOfEdges())
		}
	})
}
