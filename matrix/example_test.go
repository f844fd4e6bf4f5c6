package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grafo/matrix"
)

// ExampleCreate builds a small directed road map with string labels and
// queries it through the label API.
func ExampleCreate() {
	g, err := matrix.Create(8, "->")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = g.AddEdge("Kyiv", "Zhytomyr", 154.2)
	_ = g.AddEdge("Kyiv", "Boryspil", 34.6)
	_ = g.AddEdge("Zhytomyr", "Rivne", 193.5)

	nbrs, _ := g.Neighbors("Kyiv")
	deg, _ := g.Degree("Kyiv")
	closest, _ := g.CheapestNeighbor("Kyiv")
	fmt.Println(nbrs, deg, closest)

	_, err = g.Degree("Odesa")
	fmt.Println(errors.Is(err, matrix.ErrUnknownLabel))

	// Output:
	// [Zhytomyr Boryspil] 2 Boryspil
	// true
}

// ExampleGraph_RemoveEdgeIdx shows that removal clears the mirror cell even
// in a directed graph.
func ExampleGraph_RemoveEdgeIdx() {
	g, _ := matrix.New(3, matrix.Directed)
	_ = g.AddEdgeIdx(0, 1, 1)
	_ = g.AddEdgeIdx(1, 0, 1)
	_ = g.RemoveEdgeIdx(0, 1)

	back, _ := g.HasEdgeIdx(1, 0)
	fmt.Println(back)
	fmt.Print(g)

	// Output:
	// false
	// [-1, -1, -1]
	// [-1, -1, -1]
	// [-1, -1, -1]
}
