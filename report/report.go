package report

import (
	"time"

	"github.com/arloliu/hype/partition"
	"github.com/arloliu/hype/types"
)

// PartitionSize is the node and edge count of one partition.
type PartitionSize struct {
	ID    int `json:"id"`
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Report is the outcome of one partitioning run.
type Report struct {
	// Input names the hypergraph source, usually a file path.
	Input string `json:"input,omitempty"`

	// Strategy is the assignment strategy name.
	Strategy string `json:"strategy"`

	// Partitions is the partition count.
	Partitions int `json:"partitions"`

	// Balancing is the balancing factor used while streaming.
	Balancing float64 `json:"balancing"`

	// Elements is the number of streamed elements.
	Elements int `json:"elements"`

	// Quality holds the five quality scores.
	Quality types.Quality `json:"quality"`

	// StreamingDuration is the wall-clock time of the streaming phase.
	StreamingDuration time.Duration `json:"streamingDurationNs"`

	// Fingerprint identifies the node assignment (see partition.Fingerprint).
	Fingerprint uint64 `json:"fingerprint"`

	// Sizes lists per-partition node and edge counts.
	Sizes []PartitionSize `json:"sizes,omitempty"`

	// CreatedAt is when the report was built.
	CreatedAt time.Time `json:"createdAt"`
}

// Sizes returns the node and edge count of every partition, in index order.
func Sizes(parts []*partition.Partition) []PartitionSize {
	out := make([]PartitionSize, len(parts))
	for i, p := range parts {
		out[i] = PartitionSize{
			ID:    p.ID(),
			Nodes: p.NumberOfNodes(),
			Edges: p.NumberOfEdges(),
		}
	}

	return out
}

// StreamingMillis returns the streaming duration in whole milliseconds.
func (r *Report) StreamingMillis() int64 {
	return r.StreamingDuration.Milliseconds()
}
