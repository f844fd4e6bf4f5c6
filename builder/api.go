// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafo/matrix"
)

// Target is the label-keyed surface constructors write into.
// *matrix.Graph satisfies it.
type Target interface {
	AddEdge(a, b string, w float64) error
	Symmetric() bool
}

// Constructor applies one deterministic topology to g using cfg.
type Constructor func(g Target, cfg builderConfig) error

// Build resolves opts and applies cons to g in order. The first failure is
// returned wrapped as "Build: %w"; edges inserted before it stay.
func Build(g Target, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil target: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// BuildGraph creates a matrix.Graph of the given capacity and mode and runs
// Build on it.
func BuildGraph(size int, mode matrix.Mode, gopts []matrix.Option, bopts []BuilderOption, cons ...Constructor) (*matrix.Graph, error) {
	g, err := matrix.New(size, mode, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = Build(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
