package strategy

import (
	"testing"

	"github.com/arloliu/hype/types"
	"github.com/stretchr/testify/require"
)

func TestNewConsistentHash(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ch := NewConsistentHash()
		require.Equal(t, defaultVirtualNodes, ch.virtualNodes)
		require.Zero(t, ch.hashSeed)
	})

	t.Run("options", func(t *testing.T) {
		ch := NewConsistentHash(WithVirtualNodes(300), WithHashSeed(7), nil)
		require.Equal(t, 300, ch.virtualNodes)
		require.Equal(t, uint64(7), ch.hashSeed)
	})

	t.Run("non-positive virtual nodes fall back to default", func(t *testing.T) {
		require.Equal(t, defaultVirtualNodes, NewConsistentHash(WithVirtualNodes(0)).virtualNodes)
	})
}

func TestConsistentHash_Select(t *testing.T) {
	t.Run("placement depends only on node id", func(t *testing.T) {
		_, viewsA := newViews(4)
		partsB, viewsB := newViews(4)
		partsB[2].AddNode(99, []uint64{1, 2, 3})

		a := NewConsistentHash()
		b := NewConsistentHash()
		for n := range uint64(100) {
			elem := types.Element{Node: n, Edges: []uint64{1}}
			ia, err := a.Select(viewsA, elem, 0)
			require.NoError(t, err)
			ib, err := b.Select(viewsB, elem, 5)
			require.NoError(t, err)
			require.Equal(t, ia, ib)
			require.GreaterOrEqual(t, ia, 0)
			require.Less(t, ia, 4)
		}
	})

	t.Run("rebuilds ring when partition count changes", func(t *testing.T) {
		ch := NewConsistentHash()
		_, two := newViews(2)
		_, eight := newViews(8)

		_, err := ch.Select(two, types.Element{Node: 1}, 0)
		require.NoError(t, err)
		require.Equal(t, 2, ch.ring.Partitions())

		idx, err := ch.Select(eight, types.Element{Node: 1}, 0)
		require.NoError(t, err)
		require.Less(t, idx, 8)
		require.Equal(t, 8, ch.ring.Partitions())
	})

	t.Run("returns error when no partitions", func(t *testing.T) {
		_, err := NewConsistentHash().Select(nil, types.Element{Node: 1}, 0)
		require.ErrorIs(t, err, ErrNoPartitions)
	})
}
