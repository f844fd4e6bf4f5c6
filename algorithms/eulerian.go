// Package algorithms - textbook Eulerian-circuit feasibility.
//
// A graph has an Eulerian circuit iff every vertex with edges lies in one
// connected component and
//   - Symmetric: every vertex has even degree,
//   - Directed:  every vertex has in-degree == out-degree
//     (connectivity is taken on the underlying undirected graph).
//
// Edges are cells with w >= 0 between distinct indices; self-loops never change
// parity or balance and are ignored. A graph without any edge has nothing to
// traverse and is reported as infeasible.
//
// Time complexity: O(V²) HasEdgeIdx probes plus O(V + E) for the BFS
// Memory usage:    O(V + E)
package algorithms

import "fmt"

// EulerianCircuitFeasible reports whether g admits an Eulerian circuit.
func EulerianCircuitFeasible(g Indexed) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.Size()
	out := make([]int, n)
	in := make([]int, n)
	und := make([][]int, n) // underlying undirected adjacency

	// Stage 1: degree tally and undirected adjacency.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			ok, err := g.HasEdgeIdx(i, j)
			if err != nil {
				return false, fmt.Errorf("algorithms: EulerianCircuitFeasible: HasEdgeIdx(%d, %d): %w", i, j, err)
			}
			if !ok {
				continue
			}
			out[i]++
			in[j]++
			und[i] = append(und[i], j)
			und[j] = append(und[j], i)
		}
	}

	// Stage 2: parity or balance.
	start := -1
	for i := 0; i < n; i++ {
		if out[i]+in[i] == 0 {
			continue
		}
		if start < 0 {
			start = i
		}
		if g.Symmetric() && out[i]%2 != 0 {
			return false, nil
		}
		if !g.Symmetric() && out[i] != in[i] {
			return false, nil
		}
	}
	if start < 0 {
		return false, nil
	}

	// Stage 3: every vertex with edges is reachable from the first one.
	seen := reachable(und, start)
	for i := 0; i < n; i++ {
		if out[i]+in[i] > 0 && !seen[i] {
			return false, nil
		}
	}

	return true, nil
}

// reachable runs a breadth-first walk over adj from start and returns the
// visited mask.
func reachable(adj [][]int, start int) []bool {
	seen := make([]bool, len(adj))
	seen[start] = true
	queue := []int{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}
