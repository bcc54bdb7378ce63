package types

import "context"

// Element is one record of the hypergraph stream: a node and the ids of the
// hyperedges it belongs to.
//
// A hyperedge is never materialized. Every node that lists the same edge id
// is a member of the same hyperedge.
type Element struct {
	// Node is the unique node id.
	Node uint64 `json:"node"`

	// Edges lists the incident hyperedge ids in input order. It may be empty.
	Edges []uint64 `json:"edges,omitempty"`
}

// ElementSource produces the ordered sequence of elements consumed by the
// partitioning engine.
//
// Implementations:
//   - source.Static: fixed in-memory list (tests, embedding)
//   - source.Reader: textual hypergraph format
type ElementSource interface {
	// Next returns the next element in arrival order.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - Element: The next element
	//   - error: io.EOF once the stream is exhausted, any other error aborts the stream
	Next(ctx context.Context) (Element, error)
}
