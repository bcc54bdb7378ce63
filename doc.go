// Package hype partitions hypergraphs in a single streaming pass.
//
// Nodes arrive one at a time together with the ids of their hyperedges. Each
// node is placed immediately and never moved: among the partitions whose node
// count is within a balancing factor of the smallest one, the node goes to
// the partition that already touches most of its hyperedges, the lowest
// index winning ties. The finished partitioning is then scored with five
// independent metrics computed concurrently: sum of external degrees,
// hyperedge cut, k-1 replication, and node and edge balancing ratios.
//
// # Quick Start
//
//	import (
//	    "github.com/arloliu/hype"
//	    "github.com/arloliu/hype/source"
//	)
//
//	cfg := hype.DefaultConfig()
//	cfg.Partitions = 4
//
//	p, err := hype.NewPartitioner(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rd, err := source.OpenFile("graph.hgr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rd.Close()
//
//	res, err := p.Run(ctx, rd)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Quality.KMinus1)
//
// # Input Format
//
// The text format is a whitespace-insensitive list of records, either
// "node: edge, edge, ..." or a bare "node". See package source.
//
// # Architecture
//
//	source (Static, Reader) -> streamer (sequential) -> frozen partitions -> quality (concurrent) -> report
//
// The streaming phase mutates the partitions from a single goroutine. The
// partitions are then frozen and shared read-only by the metric tasks, so
// no locking is needed in either phase.
//
// # Advanced Usage
//
// Baseline strategies for comparison:
//
//	import "github.com/arloliu/hype/strategy"
//
//	p, err := hype.NewPartitioner(&cfg,
//	    hype.WithStrategy(strategy.NewConsistentHash(strategy.WithVirtualNodes(300))),
//	    hype.WithHooks(&hype.Hooks{
//	        OnStreamCompleted: func(ctx context.Context, stats hype.RunStats) error {
//	            log.Printf("%d elements in %s", stats.Elements, stats.Duration)
//	            return nil
//	        },
//	    }),
//	)
//
// See the examples/ directory and cmd/hype for complete programs.
package hype
