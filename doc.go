// Package grafo is a small weighted-graph toolkit built around a fixed-size
// adjacency matrix with a string-label layer on top.
//
// Packages:
//
//	matrix/     - Graph: dense or sparse weight table, label↔index mapping,
//	              index-keyed engine (…Idx) and label-keyed adapter, gonum export
//	algorithms/ - HasCycle, FleuryFeasible, EulerianCircuitFeasible over indices
//	edgelist/   - "a b [w]" row reader and loader for unsigned-integer edge lists
//	builder/    - deterministic fixtures: Cycle, Path, Star, Wheel, Complete, RandomSparse
//	cmd/grafo   - command-line front end reading edge lists from stdin
//
// Quick ASCII example:
//
//	  0───1
//	  │   │
//	  4   2
//	   \ /
//	    3
//
// A weight of NoEdge (-1) marks an absent edge; any weight >= 0 is present.
// Labels receive sequential indices on first use and are never recycled, so a
// Graph created with size n holds at most n distinct labels.
//
//	g, _ := matrix.New(5, matrix.Symmetric)
//	_ = g.AddEdge("a", "b", 2)
//	ok, _ := algorithms.HasCycle(g, 0)
package grafo
