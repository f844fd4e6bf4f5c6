// Package matrix is the graph store: a fixed-capacity weighted graph kept in a
// square weight table, with a label layer mapping arbitrary strings to indices.
//
// The matrix package provides:
//
//   - Graph, created with New (typed Mode) or Create (mode string, with a logged
//     fallback to Symmetric for unknown strings, or ErrUnknownMode under
//     WithStrictMode).
//   - An index-keyed engine (AddEdgeIdx, RemoveEdgeIdx, DegreeIdx, HasEdgeIdx,
//     NeighborsIdx, CheapestNeighborIdx) used directly by the algorithms package.
//   - A label-keyed adapter (AddEdge, RemoveEdge, Degree, HasEdge, Neighbors,
//     CheapestNeighbor) that resolves labels and delegates to the engine.
//   - Converters: Edges (flat edge list) and ToGonum (gonum simple graphs).
//
// Every empty cell holds NoEdge (-1). A weight >= 0 is an edge; negative weights
// cannot be represented as edges. HasEdge/Degree test w >= 0 while Neighbors
// tests w > NoEdge; the two thresholds differ on purpose.
//
// Known limitations kept from the original model:
//
//   - RemoveEdge clears both [a][b] and [b][a] even for Directed graphs.
//   - Labels are never recycled; capacity is spent by the first Size() labels.
//
// The default dense backend costs O(size²) memory; WithSparse switches to
// per-row maps with the same observable behavior. Graph is not safe for
// concurrent use.
package matrix
