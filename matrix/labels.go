// SPDX-License-Identifier: MIT

// Package matrix - label layer.
//
// index maps label → index; byIndex provides the reverse lookup in O(1).
// Labels are assigned the next sequential index (the current label count) on
// first use and are never reassigned or recycled.
package matrix

import (
	"fmt"
	"slices"
)

// IndexOf returns the index assigned to label.
// Unknown labels return ErrUnknownLabel rather than aliasing index 0.
func (g *Graph) IndexOf(label string) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("Graph.%s(%q): %w", ctxIndexOf, label, ErrUnknownLabel)
	}

	return i, nil
}

// LabelOf returns the label assigned to index i.
// Errors: ErrIndexOutOfRange for i outside [0, size); ErrUnlabeledIndex when
// no label was ever assigned to i.
func (g *Graph) LabelOf(i int) (string, error) {
	if err := g.checkIndex(ctxLabelOf, i); err != nil {
		return "", err
	}
	if i >= len(g.index) {
		return "", fmt.Errorf("Graph.%s(%d): %w", ctxLabelOf, i, ErrUnlabeledIndex)
	}

	return g.byIndex[i], nil
}

// Labels returns a copy of all assigned labels in index order.
func (g *Graph) Labels() []string {
	return append([]string(nil), g.byIndex[:len(g.index)]...)
}

// LabelCount returns the number of assigned labels.
func (g *Graph) LabelCount() int { return len(g.index) }

// labelAt returns the label of a valid index, "" when unassigned.
func (g *Graph) labelAt(i int) string {
	return g.byIndex[i]
}

// resolve maps a label to its index with method context.
func (g *Graph) resolve(ctx, label string) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("Graph.%s(%q): %w", ctx, label, ErrUnknownLabel)
	}

	return i, nil
}

// register assigns indices to every unseen label in order.
// Stage 1 (Validate): count distinct unseen labels; fail before mutating
// anything if they would not fit into [0, size).
// Stage 2 (Execute): assign sequential indices.
func (g *Graph) register(ctx string, labels ...string) error {
	fresh := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := g.index[l]; ok || slices.Contains(fresh, l) {
			continue
		}
		fresh = append(fresh, l)
	}

	if len(g.index)+len(fresh) > g.size {
		g.logger().Warn("label capacity exhausted",
			"labels", len(g.index), "requested", len(fresh), "size", g.size)
		return fmt.Errorf("Graph.%s(%q): %d labels, size %d: %w",
			ctx, fresh, len(g.index), g.size, ErrCapacityExceeded)
	}

	for _, l := range fresh {
		i := len(g.index)
		g.index[l] = i
		g.byIndex[i] = l
	}

	return nil
}
