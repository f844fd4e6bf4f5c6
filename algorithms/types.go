package algorithms

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("algorithms: graph is nil")

	// ErrStartOutOfRange indicates the start index is outside [0, Size()).
	ErrStartOutOfRange = errors.New("algorithms: start index out of range")
)

// Indexed is the index-keyed graph surface the algorithms need.
// *matrix.Graph satisfies it.
type Indexed interface {
	// Size returns the number of indices; valid indices are [0, Size()).
	Size() int
	// NeighborsIdx returns the neighbors of i in ascending order, never i itself.
	NeighborsIdx(i int) ([]int, error)
	// DegreeIdx returns the number of present edges leaving i.
	DegreeIdx(i int) (int, error)
	// HasEdgeIdx reports whether the edge a→b is present.
	HasEdgeIdx(a, b int) (bool, error)
	// Symmetric reports whether every edge is mirrored.
	Symmetric() bool
}

// checkStart validates g and start for the named algorithm.
func checkStart(algo string, g Indexed, start int) error {
	if g == nil {
		return ErrGraphNil
	}
	if start < 0 || start >= g.Size() {
		return fmt.Errorf("algorithms: %s(%d): size %d: %w", algo, start, g.Size(), ErrStartOutOfRange)
	}

	return nil
}
