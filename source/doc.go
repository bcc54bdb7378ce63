// Package source provides built-in element source implementations.
//
// Element sources produce the ordered (node, edges) sequence consumed by the
// streaming engine. The package includes:
//
//   - Static: Fixed in-memory list of elements
//   - Reader: Streaming parser for the textual hypergraph format
//
// The textual format is a whitespace-insensitive sequence of records, each
// either a node id followed by a colon and a comma-separated list of at
// least one edge id, or a bare node id:
//
//	1: 10, 11
//	2: 10
//	3
//
// Newlines carry no meaning, so "1:10,11 2:10 3" is the same input.
//
// Custom sources can be implemented by satisfying the types.ElementSource interface.
package source
