// Package dijkstra_test provides runnable examples for uniform-cost search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// ExampleShortestPath demonstrates a search on a simple triangle graph.
func ExampleShortestPath() {
	// 1) Build A—B(1), B—C(2), A—C(5).
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	// 2) Search A → C.
	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if res == nil {
		fmt.Println("no path")
		return
	}

	// 3) The detour through B is cheaper than the direct edge.
	fmt.Printf("path=%v distance=%g explored=%d algorithm=%s\n",
		res.Path, res.Distance, res.NodesExplored, res.Algorithm)
	// Output: path=[A B C] distance=3 explored=3 algorithm=dijkstra
}

// ExampleShortestPath_noPath shows that an unreachable target is a nil result, not an error.
func ExampleShortestPath_noPath() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddNode("Z", 0, 0)

	res, err := dijkstra.ShortestPath(g, "A", "Z")
	fmt.Println(res == nil, err)
	// Output: true <nil>
}
