// Package matrix provides converters from Graph to edge-list and gonum
// representations.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// EdgeListItem is a flat representation of a single present edge.
type EdgeListItem struct {
	From, To int
	Weight   float64
}

// Edges returns every cell with weight >= 0 in row-major order.
// For Symmetric graphs each edge a-b (a != b) appears twice, once per direction.
//
// Time Complexity: O(size²) dense, O(size + E log d) sparse
func (g *Graph) Edges() []EdgeListItem {
	var out []EdgeListItem
	for i := 0; i < g.size; i++ {
		g.store.scanRow(i, func(j int, w float64) {
			if w >= 0 {
				out = append(out, EdgeListItem{From: i, To: j, Weight: w})
			}
		})
	}

	return out
}

// ToGonum exports present edges (w >= 0) into a gonum simple weighted graph
// whose node IDs are the matrix indices 0..size-1. Directed graphs become
// *simple.WeightedDirectedGraph, Symmetric ones *simple.WeightedUndirectedGraph.
// Self-loops are dropped because gonum's simple graphs reject them.
//
// Time Complexity: O(size + E)
func (g *Graph) ToGonum() (graph.Weighted, error) {
	if g == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilGraph)
	}

	type builder interface {
		graph.Weighted
		AddNode(graph.Node)
		NewWeightedEdge(from, to graph.Node, weight float64) graph.WeightedEdge
		SetWeightedEdge(graph.WeightedEdge)
	}

	var dst builder
	if g.mode == Symmetric {
		dst = simple.NewWeightedUndirectedGraph(0, NoEdge)
	} else {
		dst = simple.NewWeightedDirectedGraph(0, NoEdge)
	}

	for i := 0; i < g.size; i++ {
		dst.AddNode(simple.Node(i))
	}

	var loops int
	for _, e := range g.Edges() {
		if e.From == e.To {
			loops++
			continue
		}
		if g.mode == Symmetric && e.From > e.To {
			continue // mirror of an edge already set
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}
	if loops > 0 {
		g.logger().Debug("self-loops dropped on gonum export", "count", loops)
	}

	return dst, nil
}
