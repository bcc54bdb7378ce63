package types

import "errors"

// Sentinel errors for the Hype library.
//
// These errors provide type-safe error checking using errors.Is().
// Components wrap them with context using fmt.Errorf("%w: ...", ErrX, ...)
// and wrap external errors with fmt.Errorf("...: %w", err).

// Configuration errors - returned at construction time.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPartitionCount is returned when the partition count is not positive.
	ErrInvalidPartitionCount = errors.New("partition count must be positive")

	// ErrInvalidBalancing is returned when the balancing factor is negative or NaN.
	ErrInvalidBalancing = errors.New("balancing factor must be a non-negative number")

	// ErrStrategyRequired is returned when a nil assignment strategy is supplied.
	ErrStrategyRequired = errors.New("assignment strategy is required")

	// ErrSourceRequired is returned when a nil element source is supplied.
	ErrSourceRequired = errors.New("element source is required")
)

// Streaming errors - returned by the partitioning engine and strategies.
var (
	// ErrNoPartitions is returned when a strategy is asked to choose among zero partitions.
	ErrNoPartitions = errors.New("no partitions available")

	// ErrNoEligiblePartition is returned when no partition passes the balancing filter.
	// With a valid balancing factor this cannot happen.
	ErrNoEligiblePartition = errors.New("no eligible partition")

	// ErrAlreadyFrozen is returned when an element is added after the partitions were frozen.
	ErrAlreadyFrozen = errors.New("partitions already frozen")
)

// Input errors - returned by element sources.
var (
	// ErrInputUnavailable is returned when the input cannot be opened or read.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrMalformedInput is returned when the input does not follow the hypergraph format.
	ErrMalformedInput = errors.New("malformed input")
)

// Report errors - returned by report publishers.
var (
	// ErrPublishFailed is returned when a report cannot be published.
	ErrPublishFailed = errors.New("failed to publish report")
)
