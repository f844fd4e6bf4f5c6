// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// Sentinels. Constructors wrap them as "<Method>: <detail>: %w"; callers
// branch with errors.Is.
//
// Priority when several checks fail: size -> probability -> rng -> target.
var (
	// ErrTooFewVertices indicates n below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil target or a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// builderErrorf prefixes format with method; the final argument is the
// wrapped cause: builderErrorf("Cycle", "n=%d", n, ErrTooFewVertices).
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format+": %w", args...)
}
