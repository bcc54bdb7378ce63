package strategy

import (
	"fmt"
	"math"

	"github.com/arloliu/hype/types"
)

// MinMax implements the balance-constrained neighbourhood heuristic.
//
// For every element it:
//  1. Finds the node count of the smallest partition
//  2. Keeps the partitions whose node count is <= smallest * (1 + balancing)
//  3. Scores each kept partition by the number of the element's hyperedges it already touches
//  4. Returns the best score, the lowest partition index on ties
//
// The smallest partition always passes step 2 for balancing >= 0, so a
// valid call always selects a partition.
type MinMax struct{}

var _ types.AssignmentStrategy = (*MinMax)(nil)

// NewMinMax creates a new MinMax strategy.
//
// Example:
//
//	s, _ := streamer.New(4, streamer.WithStrategy(strategy.NewMinMax()))
func NewMinMax() *MinMax {
	return &MinMax{}
}

// Select picks the eligible partition with the highest affinity to the element.
//
// Parameters:
//   - parts: Partition views ordered by index
//   - elem: Element to place
//   - balancing: Allowed relative slack above the smallest partition (>= 0)
//
// Returns:
//   - int: Index into parts of the selected partition
//   - error: ErrNoPartitions, types.ErrInvalidBalancing
func (m *MinMax) Select(parts []types.PartitionView, elem types.Element, balancing float64) (int, error) {
	idx, _, err := m.SelectWithScore(parts, elem, balancing)
	return idx, err
}

// SelectWithScore is Select that also returns the winning affinity score.
func (m *MinMax) SelectWithScore(parts []types.PartitionView, elem types.Element, balancing float64) (int, int, error) {
	if len(parts) == 0 {
		return -1, 0, ErrNoPartitions
	}
	if err := ValidateBalancing(balancing); err != nil {
		return -1, 0, err
	}

	threshold := Threshold(parts, balancing)

	best, bestScore := -1, -1
	for i, p := range parts {
		if float64(p.NumberOfNodes()) > threshold {
			continue
		}
		// strict comparison keeps the earliest index on ties
		if score := p.CommonTopics(elem.Edges); score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return -1, 0, fmt.Errorf("%w: threshold %v", types.ErrNoEligiblePartition, threshold)
	}

	return best, bestScore, nil
}

// Threshold returns the largest node count a partition may have and still be
// eligible: smallest * (1 + balancing).
func Threshold(parts []types.PartitionView, balancing float64) float64 {
	if len(parts) == 0 {
		return 0
	}

	smallest := parts[0].NumberOfNodes()
	for _, p := range parts[1:] {
		smallest = min(smallest, p.NumberOfNodes())
	}

	return float64(smallest) * (1 + balancing)
}

// Eligible returns the indices of the partitions that pass the balancing filter.
//
// For balancing >= 0 and a non-empty parts slice the result is never empty:
// it always contains every partition of minimal node count.
func Eligible(parts []types.PartitionView, balancing float64) []int {
	threshold := Threshold(parts, balancing)

	out := make([]int, 0, len(parts))
	for i, p := range parts {
		if float64(p.NumberOfNodes()) <= threshold {
			out = append(out, i)
		}
	}

	return out
}

// ValidateBalancing rejects balancing factors that could empty the eligible set.
func ValidateBalancing(balancing float64) error {
	if math.IsNaN(balancing) || balancing < 0 {
		return fmt.Errorf("%w: got %v", types.ErrInvalidBalancing, balancing)
	}

	return nil
}
