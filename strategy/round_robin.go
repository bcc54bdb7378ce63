package strategy

import "github.com/arloliu/hype/types"

// RoundRobin implements simple round-robin placement.
type RoundRobin struct{}

var _ types.AssignmentStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy places the n-th element (counting assigned nodes across all
// partitions) on partition n mod P. It keeps node counts within one of each
// other and ignores hyperedges entirely.
//
// Example:
//
//	s, _ := streamer.New(4, streamer.WithStrategy(strategy.NewRoundRobin()))
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Select returns the next partition in cyclic order.
//
// The position is derived from the current partition sizes, so the
// strategy needs no state of its own. The balancing factor is ignored.
//
// Returns:
//   - int: Index into parts
//   - error: ErrNoPartitions when parts is empty
func (rr *RoundRobin) Select(parts []types.PartitionView, _ types.Element, _ float64) (int, error) {
	if len(parts) == 0 {
		return -1, ErrNoPartitions
	}

	total := 0
	for _, p := range parts {
		total += p.NumberOfNodes()
	}

	return total % len(parts), nil
}
