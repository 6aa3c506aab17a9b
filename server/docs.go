package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/katalvlaran/pathfind/heuristic"
)

type endpointDoc struct {
	Path        string      `json:"path"`
	Method      string      `json:"method"`
	Description string      `json:"description"`
	Body        interface{} `json:"body,omitempty"`
}

type docsBody struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   []endpointDoc     `json:"endpoints"`
	Heuristics  []heuristic.Kind  `json:"heuristics"`
	Complexity  map[string]string `json:"complexity"`
}

func (s *Server) docs(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	sample := map[string]interface{}{
		"graph": map[string]interface{}{
			"nodes": []interface{}{map[string]interface{}{"id": "A", "x": 0, "y": 0}, "B"},
			"edges": []interface{}{map[string]interface{}{"from": "A", "to": "B", "weight": 1.0}},
		},
		"start": "A",
		"end":   "B",
	}
	guided := map[string]interface{}{
		"graph":     map[string]interface{}{},
		"start":     "A",
		"end":       "B",
		"heuristic": "euclidean|manhattan (default " + string(s.cfg.DefaultHeuristic()) + ")",
	}

	writeJSON(w, http.StatusOK, docsBody{
		Name:        "High-Performance " + Service,
		Version:     Version,
		Description: "REST API for graph pathfinding using Dijkstra's and A* algorithms",
		Endpoints: []endpointDoc{
			{Path: "/api/health", Method: http.MethodGet, Description: "Health check endpoint"},
			{Path: "/api/docs", Method: http.MethodGet, Description: "This listing"},
			{Path: "/api/pathfind/dijkstra", Method: http.MethodPost, Description: "Find shortest path using Dijkstra's algorithm", Body: sample},
			{Path: "/api/pathfind/astar", Method: http.MethodPost, Description: "Find shortest path using A* algorithm", Body: guided},
			{Path: "/api/pathfind/compare", Method: http.MethodPost, Description: "Compare all algorithms on the same graph", Body: sample},
		},
		Heuristics: heuristic.Kinds(),
		Complexity: map[string]string{
			"dijkstra": "O((V + E) log V) with binary heap",
			"astar":    "O((V + E) log V) with heuristic optimization",
		},
	})
}
