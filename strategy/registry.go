package strategy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/hype/types"
)

// Strategy names accepted by ByName.
const (
	NameMinMax         = "minmax"
	NameRoundRobin     = "roundrobin"
	NameConsistentHash = "consistenthash"
)

// Names returns the accepted strategy names in display order.
func Names() []string {
	return []string{NameMinMax, NameRoundRobin, NameConsistentHash}
}

// IsKnown reports whether name (case-insensitive) is an accepted strategy name.
func IsKnown(name string) bool {
	return slices.Contains(Names(), strings.ToLower(name))
}

// ByName builds a strategy from its configuration name.
//
// Parameters:
//   - name: One of Names() (case-insensitive)
//   - virtualNodes: Virtual nodes per partition for consistenthash (0 for default)
//   - seed: Hash seed for consistenthash
//
// Returns:
//   - types.AssignmentStrategy: The strategy
//   - error: types.ErrInvalidConfig for unknown names
func ByName(name string, virtualNodes int, seed uint64) (types.AssignmentStrategy, error) {
	switch strings.ToLower(name) {
	case NameMinMax:
		return NewMinMax(), nil
	case NameRoundRobin:
		return NewRoundRobin(), nil
	case NameConsistentHash:
		return NewConsistentHash(WithVirtualNodes(virtualNodes), WithHashSeed(seed)), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q (must be one of: %s)",
			types.ErrInvalidConfig, name, strings.Join(Names(), ", "))
	}
}
