package dijkstra

import "errors"

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that Distances was called with an empty source ID.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrSourceNotFound indicates that the Distances source does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")
)
