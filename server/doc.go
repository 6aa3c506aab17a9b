// Package server exposes the search engine over HTTP.
//
// Routes:
//
//	GET  /api/health             service status
//	GET  /api/docs               endpoint listing
//	POST /api/pathfind/dijkstra  uniform-cost search
//	POST /api/pathfind/astar     guided search ("heuristic" defaults to config)
//	POST /api/pathfind/compare   every algorithm on the same request
//
// Request body: {"graph": {...}, "start": "A", "end": "B", "heuristic": "euclidean"}.
// Responses are JSON. Success is {"success": true, "result": {...}}; failures
// are {"error": "..."} with 400 for bad input, 404 when no path exists and
// 500 otherwise. Every response carries CORS headers and X-Request-ID.
package server
