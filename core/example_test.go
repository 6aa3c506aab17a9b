package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create a graph and place two nodes on the plane.
	g := core.NewGraph()
	_ = g.AddNode("A", 0, 0)
	_ = g.AddNode("B", 1, 0)

	// 2) Connect them both ways, then add a one-way spur to C (auto-created at 0,0).
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2, core.WithOneWay())

	// 3) Inspect.
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("B→", g.Neighbors("B"))
	fmt.Println("C→", g.Neighbors("C"))
	fmt.Println("Z→", g.Neighbors("Z"))

	// Output:
	// Nodes: [A B C]
	// B→ [{A 1} {C 2}]
	// C→ []
	// Z→ []
}
