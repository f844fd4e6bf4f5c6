// Package algorithms - lenient cycle detection.
//
// HasCycle walks the graph from start with an explicit LIFO work list and a
// single visited set:
//  1. Pop the top index and mark it visited.
//  2. For each neighbor: if already visited, report a cycle immediately;
//     otherwise push it.
//  3. An empty work list means no cycle was seen.
//
// Unlike three-color DFS there is no separate recursion path, so a node reached
// again along a different branch (a diamond in a DAG, or the way back along a
// symmetric edge) counts as a cycle. Every real cycle reachable from start is
// still reported.
//
// Time complexity: O(V·N) where N is the cost of one NeighborsIdx call
// Memory usage:    O(V + E) for the visited set and work list
package algorithms

import "fmt"

// HasCycle reports whether a node already visited reappears as a neighbor
// during a LIFO traversal from start.
// Errors: ErrGraphNil, ErrStartOutOfRange, or a wrapped NeighborsIdx failure.
func HasCycle(g Indexed, start int) (bool, error) {
	if err := checkStart("HasCycle", g, start); err != nil {
		return false, err
	}

	visited := make([]bool, g.Size())
	stack := []int{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited[cur] = true

		nbrs, err := g.NeighborsIdx(cur)
		if err != nil {
			return false, fmt.Errorf("algorithms: HasCycle: NeighborsIdx(%d): %w", cur, err)
		}
		for _, n := range nbrs {
			if visited[n] {
				return true, nil
			}
			stack = append(stack, n)
		}
	}

	return false, nil
}
