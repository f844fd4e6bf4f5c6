package algorithms

import "fmt"

// FleuryFeasible is the simplified circuit pre-check:
//  1. HasCycle(g, start) must be true.
//  2. At most one index in [0, Size()) may have a nonzero degree.
//
// It does not build a circuit and is not the Eulerian criterion; see
// EulerianCircuitFeasible for that. Because neighbors use the w > -1 threshold
// while degrees use w >= 0, the second condition can hold in graphs whose cycle
// runs through weights in (-1, 0).
func FleuryFeasible(g Indexed, start int) (bool, error) {
	ok, err := HasCycle(g, start)
	if err != nil || !ok {
		return false, err
	}

	var busy int
	for i := 0; i < g.Size(); i++ {
		d, err := g.DegreeIdx(i)
		if err != nil {
			return false, fmt.Errorf("algorithms: FleuryFeasible: DegreeIdx(%d): %w", i, err)
		}
		if d != 0 {
			busy++
		}
		if busy > 1 {
			return false, nil
		}
	}

	return true, nil
}
