// SPDX-License-Identifier: MIT

package builder

// Method tags and minimum sizes.
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// checkMin wraps ErrTooFewVertices when n < lo.
func checkMin(method string, n, lo int) error {
	if n < lo {
		return builderErrorf(method, "n=%d < min=%d", n, lo, ErrTooFewVertices)
	}

	return nil
}

// Cycle builds C_n: edges i -> (i+1)%n for i = 0..n-1. Requires n >= 3.
func Cycle(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if err := checkMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := cfg.edge(g, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds P_n: edges i -> i+1 for i = 0..n-2. Requires n >= 2.
func Path(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if err := checkMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.edge(g, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with center 0 and leaves 1..n-1 (edges 0 -> i).
// Requires n >= 2.
func Star(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if err := checkMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.edge(g, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a rim cycle over 0..n-2 then spokes hub -> rim with hub
// n-1. Requires n >= 4.
func Wheel(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if err := checkMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		rim, hub := n-1, n-1
		for i := 0; i < rim; i++ {
			if err := cfg.edge(g, methodWheel, i, (i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := cfg.edge(g, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n. Symmetric targets get one insertion per unordered pair
// (i < j); directed targets get both arcs. n == 1 has no edges and therefore
// registers no label.
func Complete(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if err := checkMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}

		return eachPair(g, n, func(i, j int) error {
			return cfg.edge(g, methodComplete, i, j)
		})
	}
}

// RandomSparse keeps each candidate pair of Complete(n) independently with
// probability p. Requires n >= 1, p in [0, 1] and an RNG (WithSeed/WithRand).
// Deterministic for a fixed seed.
func RandomSparse(n int, p float64) Constructor {
	return func(g Target, cfg builderConfig) error {
		if err := checkMin(methodRandomSparse, n, minCompleteNodes); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomSparse, "p=%g", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, "no rng", ErrNeedRandSource)
		}

		return eachPair(g, n, func(i, j int) error {
			if cfg.rng.Float64() >= p {
				return nil
			}

			return cfg.edge(g, methodRandomSparse, i, j)
		})
	}
}

// eachPair visits candidate pairs in row-major order: (i, j) with i < j for
// symmetric targets, i != j for directed ones.
func eachPair(g Target, n int, fn func(i, j int) error) error {
	sym := g.Symmetric()
	for i := 0; i < n; i++ {
		j := 0
		if sym {
			j = i + 1
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if err := fn(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
