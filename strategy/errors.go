package strategy

import "github.com/arloliu/hype/types"

// ErrNoPartitions indicates that no partitions were provided for selection.
var ErrNoPartitions = types.ErrNoPartitions
