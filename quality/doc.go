// Package quality scores a finished partitioning.
//
// The package provides five independent, read-only reductions over a frozen
// partition collection:
//
//   - SumOfExternalDegrees: sum over partitions of partition.ExternalDegree
//   - HyperedgeCut: distinct edge ids present in more than one partition
//   - KMinus1: total edge replication, sum over edges of (partitions containing it - 1)
//   - NodeBalancing / EdgeBalancing: (max - min) / max over partition sizes
//
// Evaluate runs all five concurrently and joins the results into a
// types.Quality. SumOfExternalDegrees fans out once more, one bounded task
// per partition.
//
// None of the functions mutate partitions. Callers must not add nodes while
// a computation is running; the streamer package enforces this with Freeze.
//
// Cancellation is cooperative: the context is checked between partitions,
// never inside a partition scan.
package quality
