package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRing(t *testing.T) {
	ring := NewRing(3, 100, 0)

	require.NotNil(t, ring)
	require.Equal(t, 300, ring.Size()) // 3 partitions * 100 virtual nodes
	require.Equal(t, 3, ring.Partitions())
}

func TestNewRing_Clamps(t *testing.T) {
	require.Equal(t, 2, NewRing(2, 0, 0).Size())
	require.Zero(t, NewRing(-1, 10, 0).Size())
}

func TestRing_Locate(t *testing.T) {
	t.Run("assigns nodes consistently", func(t *testing.T) {
		ring := NewRing(4, 150, 0)

		for _, node := range []uint64{0, 1, 42, 1 << 40} {
			first := ring.Locate(node)
			require.Equal(t, first, ring.Locate(node), "node %d not consistent", node)
			require.GreaterOrEqual(t, first, 0)
			require.Less(t, first, 4)
		}
	})

	t.Run("same layout for independently built rings", func(t *testing.T) {
		a := NewRing(5, 50, 7)
		b := NewRing(5, 50, 7)

		for node := range uint64(200) {
			require.Equal(t, a.Locate(node), b.Locate(node))
		}
	})

	t.Run("distributes nodes across partitions", func(t *testing.T) {
		const partitions, nodes = 3, 3000
		ring := NewRing(partitions, 150, 0)

		counts := make(map[int]int)
		for node := range uint64(nodes) {
			counts[ring.Locate(node)]++
		}

		// each partition should get roughly 1/3 of nodes (allow 25% variance)
		expected := nodes / partitions
		tolerance := expected * 25 / 100
		for i := range partitions {
			require.GreaterOrEqual(t, counts[i], expected-tolerance, "partition %d under-assigned", i)
			require.LessOrEqual(t, counts[i], expected+tolerance, "partition %d over-assigned", i)
		}
	})

	t.Run("seed changes the layout", func(t *testing.T) {
		a := NewRing(8, 20, 0)
		b := NewRing(8, 20, 99)

		diff := 0
		for node := range uint64(500) {
			if a.Locate(node) != b.Locate(node) {
				diff++
			}
		}
		require.Positive(t, diff)
	})

	t.Run("empty ring", func(t *testing.T) {
		require.Equal(t, -1, NewRing(0, 10, 0).Locate(1))
	})
}
