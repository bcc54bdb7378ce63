package hype

import "github.com/arloliu/hype/types"

// Sentinel errors returned by the Partitioner and its components.
//
// They are the same values as in the types package, so errors.Is works
// whichever package the caller imports.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidPartitionCount is returned when the partition count is not positive.
	ErrInvalidPartitionCount = types.ErrInvalidPartitionCount

	// ErrInvalidBalancing is returned when the balancing factor is negative or NaN.
	ErrInvalidBalancing = types.ErrInvalidBalancing

	// ErrStrategyRequired is returned when a nil assignment strategy is supplied.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrSourceRequired is returned when a nil element source is supplied.
	ErrSourceRequired = types.ErrSourceRequired

	// ErrNoPartitions is returned when a strategy is asked to choose among zero partitions.
	ErrNoPartitions = types.ErrNoPartitions

	// ErrAlreadyFrozen is returned when an element is added after streaming ended.
	ErrAlreadyFrozen = types.ErrAlreadyFrozen

	// ErrInputUnavailable is returned when the input cannot be opened or read.
	ErrInputUnavailable = types.ErrInputUnavailable

	// ErrMalformedInput is returned when the input does not follow the hypergraph format.
	ErrMalformedInput = types.ErrMalformedInput

	// ErrPublishFailed is returned when a report cannot be published.
	ErrPublishFailed = types.ErrPublishFailed
)
