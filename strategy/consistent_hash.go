package strategy

import (
	"errors"
	"sync"

	"github.com/arloliu/hype/internal/hash"
	"github.com/arloliu/hype/types"
)

const defaultVirtualNodes = 150

// ConsistentHash implements consistent hashing of node ids with virtual nodes.
type ConsistentHash struct {
	virtualNodes int
	hashSeed     uint64

	mu   sync.Mutex
	ring *hash.Ring
}

var _ types.AssignmentStrategy = (*ConsistentHash)(nil)

// ConsistentHashOption configures a ConsistentHash strategy.
type ConsistentHashOption func(*ConsistentHash)

// NewConsistentHash creates a new consistent hash strategy.
//
// The strategy places every node on the partition that owns the node id's
// position on an XXH3 hash ring. Placement depends only on the node id and
// the partition count, never on arrival order or on hyperedges.
//
// Parameters:
//   - opts: Optional configuration (WithVirtualNodes, WithHashSeed)
//
// Returns:
//   - *ConsistentHash: Initialized consistent hash strategy
//
// Example:
//
//	s := strategy.NewConsistentHash(
//	    strategy.WithVirtualNodes(300),
//	)
func NewConsistentHash(opts ...ConsistentHashOption) *ConsistentHash {
	ch := &ConsistentHash{
		virtualNodes: defaultVirtualNodes,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(ch)
		}
	}
	if ch.virtualNodes < 1 {
		ch.virtualNodes = defaultVirtualNodes
	}

	return ch
}

// WithVirtualNodes sets the number of virtual nodes per partition.
//
// Higher values provide better distribution but increase memory usage.
// Recommended range: 100-300 (default: 150).
func WithVirtualNodes(nodes int) ConsistentHashOption {
	return func(ch *ConsistentHash) {
		ch.virtualNodes = nodes
	}
}

// WithHashSeed sets a custom hash seed for consistent hashing.
func WithHashSeed(seed uint64) ConsistentHashOption {
	return func(ch *ConsistentHash) {
		ch.hashSeed = seed
	}
}

// Select returns the partition owning the element's node id on the ring.
//
// The ring is built on first use and rebuilt if the partition count changes.
// The balancing factor is ignored.
//
// Returns:
//   - int: Index into parts
//   - error: ErrNoPartitions when parts is empty
func (ch *ConsistentHash) Select(parts []types.PartitionView, elem types.Element, _ float64) (int, error) {
	if len(parts) == 0 {
		return -1, ErrNoPartitions
	}

	idx := ch.ringFor(len(parts)).Locate(elem.Node)
	if idx < 0 || idx >= len(parts) {
		// This shouldn't happen: the ring has exactly len(parts) partitions
		return -1, errors.New("consistent hash returned no partition")
	}

	return idx, nil
}

func (ch *ConsistentHash) ringFor(partitions int) *hash.Ring {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.ring == nil || ch.ring.Partitions() != partitions {
		ch.ring = hash.NewRing(partitions, ch.virtualNodes, ch.hashSeed)
	}

	return ch.ring
}
