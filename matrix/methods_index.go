// SPDX-License-Identifier: MIT

// Package matrix - index-keyed engine.
//
// These methods are the single source of truth for edge semantics; the label
// API in methods_label.go only resolves labels and delegates here. Algorithms
// call them directly to skip label resolution.
//
// Thresholds (intentionally distinct):
//   - HasEdgeIdx / DegreeIdx: w >= 0.
//   - NeighborsIdx:           w > NoEdge (so -1 < w < 0 is a neighbor, not an edge).
package matrix

import (
	"fmt"
	"math"
)

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// AddEdgeIdx writes w at [a][b], and at [b][a] when the graph is Symmetric.
// Errors: ErrIndexOutOfRange; ErrInvalidWeight for NaN/±Inf under the finite
// weight policy. Negative weights are stored verbatim and read as "no edge".
// Complexity: O(1).
func (g *Graph) AddEdgeIdx(a, b int, w float64) error {
	if err := g.checkPair(ctxAddEdge, a, b); err != nil {
		return err
	}
	if !g.validWeight(w) {
		return fmt.Errorf("Graph.%s(%d, %d, %g): %w", ctxAddEdge, a, b, w, ErrInvalidWeight)
	}

	g.store.set(a, b, w)
	if g.mode == Symmetric {
		g.store.set(b, a, w)
	}

	return nil
}

// RemoveEdgeIdx resets [a][b] and [b][a] to NoEdge.
// The mirror is cleared for Directed graphs too, so removing a→b also drops
// an independent b→a edge. Calling it twice equals calling it once.
// Complexity: O(1).
func (g *Graph) RemoveEdgeIdx(a, b int) error {
	if err := g.checkPair(ctxRemoveEdge, a, b); err != nil {
		return err
	}

	g.store.set(a, b, NoEdge)
	g.store.set(b, a, NoEdge)

	return nil
}

// DegreeIdx counts the cells of row i with weight >= 0, self-loop included.
// Complexity: O(size) dense, O(d log d) sparse.
func (g *Graph) DegreeIdx(i int) (int, error) {
	if err := g.checkIndex(ctxDegree, i); err != nil {
		return 0, err
	}

	var n int
	g.store.scanRow(i, func(_ int, w float64) {
		if w >= 0 {
			n++
		}
	})

	return n, nil
}

// HasEdgeIdx reports whether the weight at [a][b] is >= 0.
// Complexity: O(1).
func (g *Graph) HasEdgeIdx(a, b int) (bool, error) {
	if err := g.checkPair(ctxHasEdge, a, b); err != nil {
		return false, err
	}

	return g.store.at(a, b) >= 0, nil
}

// WeightIdx returns the raw cell value at [a][b] (NoEdge when empty).
func (g *Graph) WeightIdx(a, b int) (float64, error) {
	if err := g.checkPair(ctxWeight, a, b); err != nil {
		return 0, err
	}

	return g.store.at(a, b), nil
}

// NeighborsIdx returns, in ascending order, every j != i with [i][j] > NoEdge.
// The result is a fresh slice owned by the caller.
// Complexity: O(size) dense, O(d log d) sparse.
func (g *Graph) NeighborsIdx(i int) ([]int, error) {
	if err := g.checkIndex(ctxNeighbors, i); err != nil {
		return nil, err
	}

	return g.neighbors(i), nil
}

// neighbors is NeighborsIdx without validation.
func (g *Graph) neighbors(i int) []int {
	out := make([]int, 0, defaultReserve)
	g.store.scanRow(i, func(j int, w float64) {
		if j != i && w > NoEdge {
			out = append(out, j)
		}
	})

	return out
}

// CheapestNeighborIdx returns the neighbor of i with the smallest weight.
// Ties go to the lowest index. An isolated node yields ErrNoNeighbors.
// Complexity: same as NeighborsIdx.
func (g *Graph) CheapestNeighborIdx(i int) (int, error) {
	if err := g.checkIndex(ctxCheapest, i); err != nil {
		return 0, err
	}

	nbrs := g.neighbors(i)
	if len(nbrs) == 0 {
		return 0, fmt.Errorf("Graph.%s(%d): %w", ctxCheapest, i, ErrNoNeighbors)
	}

	best := nbrs[0]
	for _, j := range nbrs[1:] {
		if g.store.at(i, j) < g.store.at(i, best) {
			best = j
		}
	}

	return best, nil
}

// validWeight enforces the finite-weight policy.
func (g *Graph) validWeight(w float64) bool {
	return !g.opts.finiteWeights || !(math.IsNaN(w) || math.IsInf(w, 0))
}
