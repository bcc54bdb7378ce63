package strategy

import (
	"testing"

	"github.com/arloliu/hype/types"
	"github.com/stretchr/testify/require"
)

func TestRoundRobin_Select(t *testing.T) {
	t.Run("distributes elements evenly", func(t *testing.T) {
		s := NewRoundRobin()
		parts, views := newViews(3)

		for n := range uint64(9) {
			idx, err := place(s, parts, views, types.Element{Node: n, Edges: []uint64{1}}, 0)
			require.NoError(t, err)
			require.Equal(t, int(n%3), idx)
		}

		for _, p := range parts {
			require.Equal(t, 3, p.NumberOfNodes())
		}
	})

	t.Run("handles uneven counts", func(t *testing.T) {
		s := NewRoundRobin()
		parts, views := newViews(2)

		for n := range uint64(5) {
			_, err := place(s, parts, views, types.Element{Node: n}, 0)
			require.NoError(t, err)
		}

		require.Equal(t, 3, parts[0].NumberOfNodes())
		require.Equal(t, 2, parts[1].NumberOfNodes())
	})

	t.Run("returns error when no partitions", func(t *testing.T) {
		_, err := NewRoundRobin().Select(nil, types.Element{Node: 1}, 0)
		require.ErrorIs(t, err, ErrNoPartitions)
	})
}
