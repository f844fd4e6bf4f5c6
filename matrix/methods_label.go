// SPDX-License-Identifier: MIT

// Package matrix - label-keyed adapter.
//
// Every method resolves labels through the label layer and delegates to the
// index-keyed engine, so both surfaces stay observably identical.
package matrix

import "fmt"

// AddEdge connects label a to label b with weight w.
// Unseen labels are registered first (next sequential index). Nothing is
// registered when the call fails.
// Errors: ErrInvalidWeight, ErrCapacityExceeded.
func (g *Graph) AddEdge(a, b string, w float64) error {
	if !g.validWeight(w) {
		return fmt.Errorf("Graph.%s(%q, %q, %g): %w", ctxAddEdge, a, b, w, ErrInvalidWeight)
	}
	if err := g.register(ctxAddEdge, a, b); err != nil {
		return err
	}

	return g.AddEdgeIdx(g.index[a], g.index[b], w)
}

// RemoveEdge clears a→b and its mirror b→a (see RemoveEdgeIdx).
// Errors: ErrUnknownLabel.
func (g *Graph) RemoveEdge(a, b string) error {
	ia, ib, err := g.resolvePair(ctxRemoveEdge, a, b)
	if err != nil {
		return err
	}

	return g.RemoveEdgeIdx(ia, ib)
}

// Degree counts present edges (w >= 0) leaving label.
func (g *Graph) Degree(label string) (int, error) {
	i, err := g.resolve(ctxDegree, label)
	if err != nil {
		return 0, err
	}

	return g.DegreeIdx(i)
}

// HasEdge reports whether a→b holds a weight >= 0.
func (g *Graph) HasEdge(a, b string) (bool, error) {
	ia, ib, err := g.resolvePair(ctxHasEdge, a, b)
	if err != nil {
		return false, err
	}

	return g.HasEdgeIdx(ia, ib)
}

// Weight returns the raw cell value for a→b.
func (g *Graph) Weight(a, b string) (float64, error) {
	ia, ib, err := g.resolvePair(ctxWeight, a, b)
	if err != nil {
		return 0, err
	}

	return g.WeightIdx(ia, ib)
}

// Neighbors returns the labels of NeighborsIdx(IndexOf(label)) in index order.
// Neighbor indices that were only ever touched through the index API carry no
// label and appear as "".
func (g *Graph) Neighbors(label string) ([]string, error) {
	i, err := g.resolve(ctxNeighbors, label)
	if err != nil {
		return nil, err
	}

	idx := g.neighbors(i)
	out := make([]string, len(idx))
	for k, j := range idx {
		out[k] = g.labelAt(j)
	}

	return out, nil
}

// CheapestNeighbor is the label form of CheapestNeighborIdx.
func (g *Graph) CheapestNeighbor(label string) (string, error) {
	i, err := g.resolve(ctxCheapest, label)
	if err != nil {
		return "", err
	}
	j, err := g.CheapestNeighborIdx(i)
	if err != nil {
		return "", err
	}

	return g.labelAt(j), nil
}

// resolvePair resolves both endpoints, reporting the first unknown label.
func (g *Graph) resolvePair(ctx, a, b string) (int, int, error) {
	ia, err := g.resolve(ctx, a)
	if err != nil {
		return 0, 0, err
	}
	ib, err := g.resolve(ctx, b)
	if err != nil {
		return 0, 0, err
	}

	return ia, ib, nil
}
