// Package testing provides test utilities for the Hype library.
//
// This package offers helpers for checking partitioning invariants and for
// setting up an embedded NATS server to test report publishing. It follows
// Go's convention of providing testing utilities in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - AssertPartitioningConsistent: node uniqueness and coverage of a partitioning
//   - AssertEdgesCovered: every ingested edge id is present where its nodes are
//   - NewTestLogger / NewRecordingLogger: types.Logger implementations for tests
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//
// Example usage:
//
//	import (
//	    "testing"
//	    hypetest "github.com/arloliu/hype/testing"
//	)
//
//	func TestMyPartitioning(t *testing.T) {
//	    parts := runMyStream(t)
//	    hypetest.AssertPartitioningConsistent(t, parts, []uint64{1, 2, 3})
//	}
package testing
