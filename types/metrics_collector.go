package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Quality methods are called from metric goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	StreamingMetrics
	QualityMetrics
}

// StreamingMetrics defines metrics for the streaming phase.
type StreamingMetrics interface {
	// RecordElementAssigned records one element placement.
	//
	// Parameters:
	//   - partitionID: Partition that received the element
	//   - score: Affinity score (common hyperedges) of the chosen partition
	RecordElementAssigned(partitionID int, score int)

	// RecordStreamingDuration records a completed streaming phase.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - elements: Number of elements streamed
	RecordStreamingDuration(duration float64, elements int)
}

// QualityMetrics defines metrics for the metric computation phase.
type QualityMetrics interface {
	// RecordMetricDuration records how long one quality metric took.
	//
	// Parameters:
	//   - metric: Metric name (see Metric* constants)
	//   - duration: Time taken in seconds
	RecordMetricDuration(metric string, duration float64)

	// RecordQuality records the final quality scores.
	RecordQuality(q Quality)
}
