package strategy

import (
	"github.com/arloliu/hype/partition"
	"github.com/arloliu/hype/types"
)

// newViews creates count empty partitions and their views.
func newViews(count int) ([]*partition.Partition, []types.PartitionView) {
	parts := make([]*partition.Partition, count)
	views := make([]types.PartitionView, count)
	for i := range parts {
		parts[i] = partition.New(i)
		views[i] = parts[i]
	}

	return parts, views
}

// place runs one selection and applies it, like the streaming engine does.
func place(s types.AssignmentStrategy, parts []*partition.Partition, views []types.PartitionView, elem types.Element, balancing float64) (int, error) {
	idx, err := s.Select(views, elem, balancing)
	if err != nil {
		return idx, err
	}
	parts[idx].AddNode(elem.Node, elem.Edges)

	return idx, nil
}
