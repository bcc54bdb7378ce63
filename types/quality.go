package types

import "time"

// Metric names used for logging and per-metric duration metrics.
const (
	MetricSumOfExternalDegrees = "soed"
	MetricHyperedgeCut         = "hyperedge_cut"
	MetricNodeBalancing        = "node_balancing"
	MetricEdgeBalancing        = "edge_balancing"
	MetricKMinus1              = "k_minus_1"
)

// Quality holds the partition quality scores of a finished partitioning.
type Quality struct {
	// SumOfExternalDegrees sums, over partitions, the number of edges the
	// partition shares with at least one other partition.
	SumOfExternalDegrees int `json:"sumOfExternalDegrees" yaml:"sumOfExternalDegrees"`

	// HyperedgeCut is the number of distinct edges spanning more than one partition.
	HyperedgeCut int `json:"hyperedgeCut" yaml:"hyperedgeCut"`

	// KMinus1 is the sum over edges of (partitions containing the edge - 1).
	KMinus1 int `json:"kMinus1" yaml:"kMinus1"`

	// NodeBalancing is (max - min) / max over partition node counts, 0 when max is 0.
	NodeBalancing float64 `json:"nodeBalancing" yaml:"nodeBalancing"`

	// EdgeBalancing is (max - min) / max over partition edge counts, 0 when max is 0.
	EdgeBalancing float64 `json:"edgeBalancing" yaml:"edgeBalancing"`
}

// RunStats summarizes a completed streaming phase.
type RunStats struct {
	// Partitions is the partition count of the run.
	Partitions int

	// Elements is the number of elements assigned.
	Elements int

	// Duration is the wall-clock time of the streaming phase.
	Duration time.Duration
}
