// SPDX-License-Identifier: MIT

// Package matrix: domain types of the graph store.
// This file contains ONLY domain-facing types (Mode, the NoEdge sentinel) and the
// Graph struct itself. Errors and options live in errors.go and options.go.
package matrix

import (
	"fmt"
	"log/slog"
)

// NoEdge is the weight stored in every cell that holds no edge.
// Any weight < 0 reads as "no edge" for HasEdge and Degree; Neighbors uses the
// stricter w > NoEdge test, so weights in (-1, 0) are neighbors without being edges.
const NoEdge = -1.0

// Mode is the directionality of a Graph, fixed at construction.
type Mode int

const (
	// Directed writes each edge only at [a][b].
	Directed Mode = iota
	// Symmetric mirrors every insertion at [b][a].
	Symmetric
)

// Mode string literals recognized by ParseMode.
const (
	modeDirected       = "directed"
	modeDirectedArrow  = "->"
	modeSymmetric      = "symmetric"
	modeSymmetricArrow = "<->"
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Directed:
		return modeDirected
	case Symmetric:
		return modeSymmetric
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// valid reports whether m is one of the declared modes.
func (m Mode) valid() bool {
	return m == Directed || m == Symmetric
}

// ParseMode maps a mode string to a Mode.
// Recognized: "directed", "->", "symmetric", "<->".
// Any other string yields (Symmetric, false): the caller decides whether the
// fallback is acceptable (Create logs it) or an error (WithStrictMode).
func ParseMode(s string) (Mode, bool) {
	switch s {
	case modeDirected, modeDirectedArrow:
		return Directed, true
	case modeSymmetric, modeSymmetricArrow:
		return Symmetric, true
	default:
		return Symmetric, false
	}
}

// Graph is a fixed-capacity weighted graph over a square weight table plus a
// label layer mapping arbitrary strings to indices in [0, size).
//
// The index-keyed methods (…Idx) are the engine; label-keyed methods resolve
// labels and delegate to them. Graph is not safe for concurrent use.
type Graph struct {
	size         int            // fixed capacity, rows == cols == size
	mode         Mode           // Directed or Symmetric
	store        storage        // dense (default) or sparse weight table
	index        map[string]int // label -> index
	byIndex      []string       // index -> label, "" when unassigned
	modeFallback bool           // Create fell back to Symmetric for an unknown string
	opts         Options        // effective construction options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Graph)(nil)

// logger returns the configured logger.
func (g *Graph) logger() *slog.Logger {
	return g.opts.logger
}
