package partition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func build(assign map[int][]uint64) []*Partition {
	parts := []*Partition{New(0), New(1)}
	for id, nodes := range assign {
		for _, n := range nodes {
			parts[id].AddNode(n, []uint64{n * 10})
		}
	}

	return parts
}

func TestFingerprint(t *testing.T) {
	t.Run("stable for identical partitionings", func(t *testing.T) {
		a := build(map[int][]uint64{0: {1, 2, 3}, 1: {4}})
		b := build(map[int][]uint64{0: {3, 2, 1}, 1: {4}})

		require.Equal(t, Fingerprint(a), Fingerprint(b))
	})

	t.Run("changes when a node moves", func(t *testing.T) {
		a := build(map[int][]uint64{0: {1, 2, 3}, 1: {4}})
		b := build(map[int][]uint64{0: {1, 2}, 1: {3, 4}})

		require.NotEqual(t, Fingerprint(a), Fingerprint(b))
	})

	t.Run("empty partitionings differ by count", func(t *testing.T) {
		require.NotEqual(t, Fingerprint([]*Partition{New(0)}), Fingerprint([]*Partition{New(0), New(1)}))
	})
}

func TestAssignment(t *testing.T) {
	parts := build(map[int][]uint64{0: {1, 2}, 1: {3}})

	require.Equal(t, map[uint64]int{1: 0, 2: 0, 3: 1}, Assignment(parts))
	require.Empty(t, Assignment(nil))
}
