// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn       // index -> label
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn   // per-edge weight
}

// newBuilderConfig starts from the deterministic defaults (decimal labels,
// no RNG, constant weight) and applies opts in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// edge draws the weight for one edge and inserts it with labels for u and v.
func (c builderConfig) edge(g Target, method string, u, v int) error {
	a, b := c.idFn(u), c.idFn(v)
	w := c.weightFn(c.rng)
	if err := g.AddEdge(a, b, w); err != nil {
		return builderErrorf(method, "AddEdge(%s, %s, %g)", a, b, w, err)
	}

	return nil
}
