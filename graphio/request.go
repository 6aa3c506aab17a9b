package graphio

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ErrMissingField reports a request without graph, start or end.
var ErrMissingField = errors.New("graphio: missing required field")

// Request is the body of a search call: a graph plus the endpoints.
// Heuristic is only read by guided search and defaults to the configured
// heuristic when empty.
type Request struct {
	Graph     *GraphSpec `json:"graph"`
	Start     *string    `json:"start"`
	End       *string    `json:"end"`
	Heuristic string     `json:"heuristic,omitempty"`
}

// Validate checks that graph, start and end are present.
func (r *Request) Validate() error {
	switch {
	case r.Graph == nil:
		return errors.Wrap(ErrMissingField, "graph")
	case r.Start == nil:
		return errors.Wrap(ErrMissingField, "start")
	case r.End == nil:
		return errors.Wrap(ErrMissingField, "end")
	}

	return nil
}

// StartID returns the start node or "" when absent.
func (r *Request) StartID() string {
	if r.Start == nil {
		return ""
	}

	return *r.Start
}

// EndID returns the end node or "" when absent.
func (r *Request) EndID() string {
	if r.End == nil {
		return ""
	}

	return *r.End
}

// DecodeRequest reads and validates a JSON request.
func DecodeRequest(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.Wrap(err, "graphio: decode request")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &req, nil
}
