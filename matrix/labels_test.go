// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the label layer.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/matrix"
)

// TestLabels_RoundTrip checks LabelOf(IndexOf(l)) == l for inserted labels.
func TestLabels_RoundTrip(t *testing.T) {
	t.Parallel()
	g := mustNew(t, 8, matrix.Symmetric)
	pairs := [][2]string{{"Kyiv", "Lviv"}, {"Lviv", "Odesa"}, {"Kharkiv", "Kyiv"}, {"", "Dnipro"}}
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1))
	}

	for _, l := range []string{"Kyiv", "Lviv", "Odesa", "Kharkiv", "", "Dnipro"} {
		i, err := g.IndexOf(l)
		require.NoError(t, err)
		back, err := g.LabelOf(i)
		require.NoError(t, err)
		assert.Equal(t, l, back)
	}
}

// TestLabels_SequentialAssignment checks first-use order and that labels are
// never recycled.
func TestLabels_SequentialAssignment(t *testing.T) {
	t.Parallel()
	g := mustNew(t, 5, matrix.Directed)
	require.NoError(t, g.AddEdge("c", "a", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "b", 1))

	assert.Equal(t, []string{"c", "a", "b"}, g.Labels())
	require.NoError(t, g.RemoveEdge("c", "a"))
	require.NoError(t, g.RemoveEdge("a", "b"))
	assert.Equal(t, []string{"c", "a", "b"}, g.Labels())

	require.NoError(t, g.AddEdge("d", "c", 1))
	i, err := g.IndexOf("d")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = g.LabelOf(4)
	require.ErrorIs(t, err, matrix.ErrUnlabeledIndex)

	labels := g.Labels()
	labels[0] = "mutated"
	first, _ := g.LabelOf(0)
	assert.Equal(t, "c", first, "Labels returns a copy")
}

// TestLabels_CapacityExceeded checks that a failed insert registers nothing.
func TestLabels_CapacityExceeded(t *testing.T) {
	t.Parallel()
	g := mustNew(t, 3, matrix.Symmetric)
	require.NoError(t, g.AddEdge("a", "b", 1))

	require.ErrorIs(t, g.AddEdge("c", "d", 1), matrix.ErrCapacityExceeded)
	assert.Equal(t, 2, g.LabelCount())
	_, err := g.IndexOf("c")
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)

	require.NoError(t, g.AddEdge("c", "c", 1), "one fresh label still fits")
	require.ErrorIs(t, g.AddEdge("a", "e", 1), matrix.ErrCapacityExceeded)
	require.NoError(t, g.AddEdge("a", "c", 2), "known labels need no capacity")
}

// TestNeighbors_UnlabeledIndices shows index-only nodes surface as "".
func TestNeighbors_UnlabeledIndices(t *testing.T) {
	t.Parallel()
	g := mustNew(t, 4, matrix.Directed)
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdgeIdx(0, 3, 1))

	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", ""}, nbrs)
}
