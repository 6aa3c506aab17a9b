// Package gridgraph treats a 2D grid of integer cells as a positioned graph,
// the classic playground for comparing dijkstra and astar.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid.
//   - Cells with value ≥ PassableThreshold are passable; the rest are walls.
//   - ToGraph converts passable cells into a *core.Graph: node "x,y" placed at
//     Position{X: x, Y: y}, arcs to passable neighbors.
//
// Connectivity and weights:
//
//   - Conn4: N, E, S, W with step length 1.
//   - Conn8: adds diagonals with step length √2.
//   - Arc weight = step length, or step length × destination value when
//     TerrainCost is set (entering rough terrain costs more).
//
// With unit costs every arc weight equals the straight-line distance between
// its endpoints, so the Euclidean heuristic is admissible on any grid and the
// Manhattan heuristic is admissible under Conn4. With TerrainCost the same
// holds as long as passable values are ≥ 1.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory (deep copy).
//   - ToGraph:      O(W×H×d) time, d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
