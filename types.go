package hype

import "github.com/arloliu/hype/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `hype` package, while
// still providing a convenient `hype.Element`, `hype.Logger`, etc. for users.
type (
	Element  = types.Element
	Quality  = types.Quality
	RunStats = types.RunStats
)

// Re-export interfaces from the internal types package for convenience.
type (
	ElementSource      = types.ElementSource
	AssignmentStrategy = types.AssignmentStrategy
	PartitionView      = types.PartitionView
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)
