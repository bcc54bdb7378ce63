// Package types provides core type definitions and interfaces for the Hype library.
//
// This package contains shared types that are used across multiple packages in the
// Hype library. By keeping these types in a separate package, we avoid import cycles
// between the main hype package and its internal implementations.
//
// Key types:
//   - Element: One streamed hypergraph node with its incident hyperedge ids
//   - ElementSource: Ordered producer of elements (the input adapter contract)
//   - PartitionView: Read-only view of a partition used by assignment strategies
//   - AssignmentStrategy: Per-element partition selection
//   - Quality: The five partition quality scores
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
