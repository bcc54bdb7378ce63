package partition

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a 64-bit XXH3 digest of a partitioning.
//
// The digest covers, in partition order, each partition id followed by its
// node ids in ascending order. Two runs over the same input and
// configuration produce the same fingerprint; any difference in node
// placement changes it.
//
// Parameters:
//   - parts: Partitions ordered by index
//
// Returns:
//   - uint64: Assignment fingerprint
func Fingerprint(parts []*Partition) uint64 {
	h := xxh3.New()

	var buf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf[:], uint64(p.id)) //nolint:gosec // ids are small non-negative ordinals
		_, _ = h.Write(buf[:])

		nodes := p.Nodes()
		binary.LittleEndian.PutUint64(buf[:], uint64(len(nodes)))
		_, _ = h.Write(buf[:])

		for _, n := range nodes {
			binary.LittleEndian.PutUint64(buf[:], n)
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}

// Assignment returns the node → partition id mapping of a partitioning.
//
// If a node was (incorrectly) added to several partitions, the highest
// partition index wins; use the testing helpers to detect that case.
func Assignment(parts []*Partition) map[uint64]int {
	total := 0
	for _, p := range parts {
		total += p.NumberOfNodes()
	}

	out := make(map[uint64]int, total)
	for _, p := range parts {
		for n := range p.nodes {
			out[n] = p.id
		}
	}

	return out
}
