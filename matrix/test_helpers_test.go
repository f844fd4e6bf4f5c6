// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Run every behavioral test against both storage backends.
//   • Keep fixtures small and deterministic.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/matrix"
)

// backends lists the storage layouts each behavioral test runs against.
var backends = []struct {
	name string
	opts []matrix.Option
}{
	{"dense", nil},
	{"sparse", []matrix.Option{matrix.WithSparse()}},
}

// modes lists both directionalities.
var modes = []matrix.Mode{matrix.Directed, matrix.Symmetric}

// mustNew ALLOCATES a graph or fails the test.
func mustNew(t testing.TB, size int, mode matrix.Mode, opts ...matrix.Option) *matrix.Graph {
	t.Helper()
	g, err := matrix.New(size, mode, opts...)
	require.NoError(t, err)

	return g
}

// mustAddIdx inserts unit-weight index edges or fails the test.
func mustAddIdx(t testing.TB, g *matrix.Graph, edges ...[2]int) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, g.AddEdgeIdx(e[0], e[1], 1))
	}
}

// snapshot is the exported, comparable state of a graph.
type snapshot struct {
	Edges  []matrix.EdgeListItem
	Labels []string
	Dump   string
}

// snap captures g's observable state.
func snap(g *matrix.Graph) snapshot {
	return snapshot{Edges: g.Edges(), Labels: g.Labels(), Dump: g.String()}
}
