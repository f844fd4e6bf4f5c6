// Package builder generates deterministic graph fixtures (cycles, paths,
// stars, wheels, complete and random sparse graphs) into any label-keyed
// graph such as *matrix.Graph.
//
// Constructors are closures applied in order by Build or BuildGraph:
//
//	g, err := builder.BuildGraph(6, matrix.Symmetric, nil,
//		[]builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(6))
//
// Vertex labels come from an IDFn (decimal by default) and edge weights from a
// WeightFn (constant 1 by default). Vertices enter the graph through their
// first edge, so label i is assigned index i for every topology whose edges
// are emitted in ascending vertex order. RandomSparse may leave vertices
// without edges; those never get a label.
//
// Option constructors panic on meaningless values. Constructors return
// sentinel errors wrapped with context and never panic.
package builder
