// Package hash implements a consistent hash ring over partition indices.
package hash

import (
	"encoding/binary"
	"slices"
	"strconv"

	"github.com/zeebo/xxh3"
)

// Ring implements a consistent hash ring with virtual nodes.
//
// The ring maps node ids to partition indices. Each partition owns
// virtualNodes positions on the ring; a node id belongs to the first
// position clockwise from its hash.
type Ring struct {
	// points contains all virtual nodes on the ring, sorted by hash
	points []virtualNode

	// partitions is the number of partitions placed on the ring
	partitions int

	// seed for hash function (0 means unseeded)
	seed uint64
}

// virtualNode represents a virtual node on the hash ring.
type virtualNode struct {
	hash      uint64 // Position on the ring
	partition int    // Partition index owning this position
}

// NewRing creates a new consistent hash ring.
//
// Parameters:
//   - partitions: Number of partitions (indices 0..partitions-1)
//   - virtualNodes: Virtual nodes per partition (values < 1 are treated as 1)
//   - seed: Seed for the hash function (0 for unseeded)
//
// Returns:
//   - *Ring: Initialized hash ring
//
// Example:
//
//	ring := hash.NewRing(4, 150, 0)
//	idx := ring.Locate(nodeID)
func NewRing(partitions int, virtualNodes int, seed uint64) *Ring {
	if partitions < 0 {
		partitions = 0
	}
	if virtualNodes < 1 {
		virtualNodes = 1
	}

	ring := &Ring{
		points:     make([]virtualNode, 0, partitions*virtualNodes),
		partitions: partitions,
		seed:       seed,
	}

	for i := range partitions {
		ring.addPartition(i, virtualNodes)
	}

	// Sort by hash for binary search; ties are broken by partition index so
	// the ring layout is fully deterministic.
	slices.SortFunc(ring.points, func(a, b virtualNode) int {
		switch {
		case a.hash < b.hash:
			return -1
		case a.hash > b.hash:
			return 1
		default:
			return a.partition - b.partition
		}
	})

	return ring
}

// Locate returns the partition index responsible for the node id, or -1 if the ring is empty.
func (r *Ring) Locate(node uint64) int {
	if len(r.points) == 0 {
		return -1
	}

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], node)

	return r.locateHash(r.hash(b[:]))
}

// Partitions returns the number of partitions on the ring.
func (r *Ring) Partitions() int {
	return r.partitions
}

// Size returns the total number of virtual nodes on the ring.
func (r *Ring) Size() int {
	return len(r.points)
}

// addPartition places the virtual nodes of one partition on the ring.
func (r *Ring) addPartition(idx int, virtualNodes int) {
	label := "partition-" + strconv.Itoa(idx)
	for i := range virtualNodes {
		// Fold the partition label, then the vnode index, using the previous
		// hash as seed; avoids building a "label#i" string per vnode.
		var h uint64
		if r.seed != 0 {
			h = xxh3.HashStringSeed(label, r.seed)
		} else {
			h = xxh3.HashString(label)
		}

		var ib [8]byte
		binary.LittleEndian.PutUint64(ib[:], uint64(i)) //nolint:gosec
		h = xxh3.HashSeed(ib[:], h)

		r.points = append(r.points, virtualNode{hash: h, partition: idx})
	}
}

func (r *Ring) hash(b []byte) uint64 {
	if r.seed != 0 {
		return xxh3.HashSeed(b, r.seed)
	}

	return xxh3.Hash(b)
}

// locateHash returns the partition of the first virtual node whose hash is >= target,
// wrapping around to the first node past the end of the ring.
func (r *Ring) locateHash(target uint64) int {
	idx, _ := slices.BinarySearchFunc(r.points, target, func(p virtualNode, t uint64) int {
		switch {
		case p.hash < t:
			return -1
		case p.hash > t:
			return 1
		default:
			return 0
		}
	})
	if idx >= len(r.points) {
		idx = 0
	}

	return r.points[idx].partition
}
