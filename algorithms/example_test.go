package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/grafo/algorithms"
	"github.com/katalvlaran/grafo/matrix"
)

// ExampleHasCycle runs the cycle check on a symmetric graph with two loops:
//
//	0 ─ 1 ─ 2
//	│    \  │
//	4 ─── 3─┘
func ExampleHasCycle() {
	g, _ := matrix.New(10, matrix.Symmetric)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 0}} {
		_ = g.AddEdgeIdx(e[0], e[1], 1)
	}

	cyclic, _ := algorithms.HasCycle(g, 0)
	fleury, _ := algorithms.FleuryFeasible(g, 0)
	euler, _ := algorithms.EulerianCircuitFeasible(g)
	fmt.Println(cyclic, fleury, euler)

	// Output:
	// true false false
}
