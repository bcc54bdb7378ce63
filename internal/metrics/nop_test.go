package metrics

import (
	"testing"

	"github.com/arloliu/hype/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_DoesNotPanic(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordElementAssigned(0, 3)
		metrics.RecordElementAssigned(-1, -1)
		metrics.RecordStreamingDuration(1.5, 100)
		metrics.RecordStreamingDuration(0, 0)
		metrics.RecordMetricDuration(types.MetricHyperedgeCut, 0.01)
		metrics.RecordQuality(types.Quality{HyperedgeCut: 2, NodeBalancing: 0.5})
	})
}
