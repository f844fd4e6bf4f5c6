// SPDX-License-Identifier: MIT

// Package matrix - Graph construction & introspection.
//
// Purpose:
//   - Create fixed-capacity graphs with every cell set to NoEdge.
//   - Resolve the mode-string fallback of Create explicitly: log it (default) or
//     reject it (WithStrictMode).
//   - Centralize index validation so both API layers fail identically.
//
// Complexity quicksheet:
//   - New/Create: O(size²) dense, O(size) sparse; Clone: same as backend clone.
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxCreate     = "Create"
	ctxAddEdge    = "AddEdge"
	ctxRemoveEdge = "RemoveEdge"
	ctxDegree     = "Degree"
	ctxHasEdge    = "HasEdge"
	ctxNeighbors  = "Neighbors"
	ctxCheapest   = "CheapestNeighbor"
	ctxWeight     = "Weight"
	ctxIndexOf    = "IndexOf"
	ctxLabelOf    = "LabelOf"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// New creates a graph of the given capacity and directionality.
// MAIN DESCRIPTION:
//   - Allocates the weight table (dense unless WithSparse) with every cell NoEdge
//     and an empty label map.
//
// Errors:
//   - ErrInvalidSize when size <= 0.
//   - ErrUnknownMode when mode is not Directed or Symmetric.
//
// Complexity:
//   - Time O(size²) dense / O(size) sparse, Space the same.
func New(size int, mode Mode, opts ...Option) (*Graph, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%s(%d, %v): %w", ctxNew, size, mode, ErrUnknownMode)
	}

	return newGraph(ctxNew, size, mode, gatherOptions(opts...))
}

// Create is the string-mode constructor: "directed"/"->" or "symmetric"/"<->".
// Any other string falls back to Symmetric; the fallback is logged at Warn and
// reported by ModeFallback. Under WithStrictMode it returns ErrUnknownMode instead.
func Create(size int, mode string, opts ...Option) (*Graph, error) {
	o := gatherOptions(opts...)

	m, ok := ParseMode(mode)
	if !ok && o.strictMode {
		return nil, fmt.Errorf("%s(%d, %q): %w", ctxCreate, size, mode, ErrUnknownMode)
	}

	g, err := newGraph(ctxCreate, size, m, o)
	if err != nil {
		return nil, err
	}
	if !ok {
		g.modeFallback = true
		g.logger().Warn("unrecognized graph mode, using fallback",
			"mode", mode, "fallback", m.String(), "size", size)
	}

	return g, nil
}

// newGraph validates size and allocates the graph.
func newGraph(ctx string, size int, mode Mode, o Options) (*Graph, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctx, size, ErrInvalidSize)
	}

	return &Graph{
		size:    size,
		mode:    mode,
		store:   newStorage(size, o.sparse),
		index:   make(map[string]int),
		byIndex: make([]string, size),
		opts:    o,
	}, nil
}

// Size returns the fixed capacity; valid indices are [0, Size()).
func (g *Graph) Size() int { return g.size }

// Mode returns the directionality chosen at construction.
func (g *Graph) Mode() Mode { return g.mode }

// Symmetric reports whether insertions are mirrored.
func (g *Graph) Symmetric() bool { return g.mode == Symmetric }

// ModeFallback reports whether Create received an unrecognized mode string
// and silently chose Symmetric.
func (g *Graph) ModeFallback() bool { return g.modeFallback }

// Sparse reports whether the adjacency-of-maps backend is in use.
func (g *Graph) Sparse() bool { return g.opts.sparse }

// checkIndex validates 0 <= i < size.
func (g *Graph) checkIndex(ctx string, i int) error {
	if i < 0 || i >= g.size {
		return fmt.Errorf("Graph.%s(%d): size %d: %w", ctx, i, g.size, ErrIndexOutOfRange)
	}

	return nil
}

// checkPair validates both endpoints of an edge operation.
func (g *Graph) checkPair(ctx string, a, b int) error {
	if err := g.checkIndex(ctx, a); err != nil {
		return err
	}

	return g.checkIndex(ctx, b)
}

// EdgeCount returns the number of cells holding a present edge (w >= 0).
// A symmetric edge a-b with a != b occupies two cells and counts twice.
func (g *Graph) EdgeCount() int {
	var n int
	for i := 0; i < g.size; i++ {
		g.store.scanRow(i, func(_ int, w float64) {
			if w >= 0 {
				n++
			}
		})
	}

	return n
}

// Clone returns a deep copy sharing no storage with g.
func (g *Graph) Clone() *Graph {
	idx := make(map[string]int, len(g.index))
	for k, v := range g.index {
		idx[k] = v
	}

	return &Graph{
		size:         g.size,
		mode:         g.mode,
		store:        g.store.clone(),
		index:        idx,
		byIndex:      append([]string(nil), g.byIndex...),
		modeFallback: g.modeFallback,
		opts:         g.opts,
	}
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(size²); meant for debugging small graphs.
func (g *Graph) String() string {
	var sb strings.Builder
	for i := 0; i < g.size; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < g.size; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", g.store.at(i, j))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
