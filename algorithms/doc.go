// Package algorithms implements structural checks on index-keyed graphs.
//
// It provides free-function implementations of:
//
//   - HasCycle - lenient cycle detection from a start index.
//   - FleuryFeasible - the simplified "Fleury-style" circuit pre-check.
//   - EulerianCircuitFeasible - the textbook Eulerian-circuit criterion,
//     kept beside FleuryFeasible for comparison; it never replaces it.
//
// All functions accept the Indexed interface (satisfied by *matrix.Graph) and
// work purely on indices; no label resolution happens here.
//
// Semantics worth knowing before use:
//
//   - HasCycle reports true as soon as any already-visited node shows up as a
//     neighbor, using one global visited set. Two paths meeting at a node count
//     as a cycle, and in a Symmetric graph any edge reachable from start does.
//   - FleuryFeasible additionally requires that at most one node in the whole
//     index space has a nonzero degree, which only degenerate graphs satisfy.
//     This deviates from true Eulerian criteria and is kept as-is.
package algorithms
