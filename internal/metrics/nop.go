// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/hype/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	p, err := hype.NewPartitioner(&cfg, hype.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// StreamingMetrics implementation

// RecordElementAssigned discards the placement metric.
func (n *NopMetrics) RecordElementAssigned(_ /* partitionID */ int, _ /* score */ int) {
	// No-op
}

// RecordStreamingDuration discards the streaming duration metric.
func (n *NopMetrics) RecordStreamingDuration(_ /* duration */ float64, _ /* elements */ int) {
	// No-op
}

// QualityMetrics implementation

// RecordMetricDuration discards the metric duration.
func (n *NopMetrics) RecordMetricDuration(_ /* metric */ string, _ /* duration */ float64) {
	// No-op
}

// RecordQuality discards the quality scores.
func (n *NopMetrics) RecordQuality(_ /* q */ types.Quality) {
	// No-op
}
