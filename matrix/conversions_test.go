// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for edge-list and gonum converters.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/grafo/matrix"
)

// TestEdges lists present cells in row-major order.
func TestEdges(t *testing.T) {
	t.Parallel()
	g := mustNew(t, 3, matrix.Symmetric)
	require.NoError(t, g.AddEdgeIdx(0, 2, 4))
	require.NoError(t, g.AddEdgeIdx(1, 1, 0))
	require.NoError(t, g.AddEdgeIdx(0, 1, -0.5)) // neighbor-only, not an edge

	assert.Equal(t, []matrix.EdgeListItem{
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 1, Weight: 0},
		{From: 2, To: 0, Weight: 4},
	}, g.Edges())
}

// TestToGonum_Directed checks nodes, weights, dropped self-loops and agreement
// with gonum's cycle enumeration.
func TestToGonum_Directed(t *testing.T) {
	t.Parallel()
	for _, be := range backends {
		g := mustNew(t, 10, matrix.Directed, be.opts...)
		mustAddIdx(t, g, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{4, 4})

		wg, err := g.ToGonum()
		require.NoError(t, err)
		dg, ok := wg.(graph.Directed)
		require.True(t, ok, "directed export")

		assert.Equal(t, 10, wg.Nodes().Len())
		w, ok := wg.Weight(0, 1)
		require.True(t, ok)
		assert.Equal(t, 1.0, w)
		assert.False(t, dg.HasEdgeFromTo(1, 0))
		assert.False(t, dg.HasEdgeFromTo(4, 4), "self-loop dropped")
		assert.Empty(t, topo.DirectedCyclesIn(dg))

		require.NoError(t, g.AddEdgeIdx(3, 1, 2))
		wg, err = g.ToGonum()
		require.NoError(t, err)
		assert.NotEmpty(t, topo.DirectedCyclesIn(wg.(graph.Directed)))
	}
}

// TestToGonum_Symmetric exports an undirected graph.
func TestToGonum_Symmetric(t *testing.T) {
	t.Parallel()
	g := mustNew(t, 4, matrix.Symmetric)
	require.NoError(t, g.AddEdgeIdx(2, 0, 3))

	wg, err := g.ToGonum()
	require.NoError(t, err)
	_, directed := wg.(graph.Directed)
	assert.False(t, directed)
	assert.True(t, wg.HasEdgeBetween(0, 2))
	w, ok := wg.Weight(0, 2)
	require.True(t, ok)
	assert.Equal(t, 3.0, w)

	var nilGraph *matrix.Graph
	_, err = nilGraph.ToGonum()
	require.ErrorIs(t, err, matrix.ErrNilGraph)
}
