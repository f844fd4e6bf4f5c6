package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/grafo/edgelist"
	"github.com/katalvlaran/grafo/matrix"
)

// app carries the parsed global flags and I/O into command Run methods.
type app struct {
	cli
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// graphOptions maps global flags to matrix options.
func (a *app) graphOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithLogger(a.logger)}
	if a.Strict {
		opts = append(opts, matrix.WithStrictMode())
	}
	if a.Sparse {
		opts = append(opts, matrix.WithSparse())
	}

	return opts
}

// load builds the graph from stdin.
func (a *app) load() (*matrix.Graph, error) {
	g, err := matrix.Create(a.Size, a.Mode, a.graphOptions()...)
	if err != nil {
		return nil, err
	}
	opts := []edgelist.Option{edgelist.WithLogger(a.logger)}
	if a.Index {
		opts = append(opts, edgelist.WithIndexMode())
	}
	st, err := edgelist.Load(g, a.in, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph ready", "size", g.Size(), "mode", g.Mode(), "labels", g.LabelCount(), "rows", st.Rows)

	return g, nil
}

// index resolves a node argument to an index: parsed as an integer with
// --index, looked up as a label otherwise.
func (a *app) index(g *matrix.Graph, node string) (int, error) {
	if !a.Index {
		return g.IndexOf(node)
	}
	i, err := strconv.Atoi(node)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", node, err)
	}

	return i, nil
}

// name renders index i the way the user addresses nodes.
func (a *app) name(g *matrix.Graph, i int) string {
	if a.Index {
		return strconv.Itoa(i)
	}
	l, err := g.LabelOf(i)
	if err != nil {
		return strconv.Itoa(i)
	}

	return l
}
