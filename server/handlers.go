package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/katalvlaran/pathfind"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/graphio"
	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/route"
)

type errorBody struct {
	Error string `json:"error"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type resultBody struct {
	Success bool          `json:"success"`
	Result  *route.Result `json:"result"`
}

type compareBody struct {
	Success     bool                `json:"success"`
	Start       string              `json:"start"`
	End         string              `json:"end"`
	Comparisons pathfind.Comparison `json:"comparisons"`
}

type healthBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, healthBody{Status: "healthy", Service: Service, Version: Version})
}

func (s *Server) dijkstra(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, g, ok := s.decode(w, r)
	if !ok {
		return
	}

	res, err := pathfind.ShortestPath(g, req.StartID(), req.EndID())
	s.respond(w, r, req, res, err)
}

func (s *Server) astar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, g, ok := s.decode(w, r)
	if !ok {
		return
	}

	tag := req.Heuristic
	if tag == "" {
		tag = string(s.cfg.DefaultHeuristic())
	}
	res, err := pathfind.ShortestPathGuided(g, req.StartID(), req.EndID(), tag)
	s.respond(w, r, req, res, err)
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, g, ok := s.decode(w, r)
	if !ok {
		return
	}

	cmp, err := pathfind.Compare(g, req.StartID(), req.EndID())
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	if cmp.Empty() {
		writeJSON(w, http.StatusNotFound, errorBody{
			Error: "No path found by any algorithm", Start: req.StartID(), End: req.EndID(),
		})
		return
	}

	writeJSON(w, http.StatusOK, compareBody{
		Success: true, Start: req.StartID(), End: req.EndID(), Comparisons: cmp,
	})
}

// errNoBody replaces io.EOF from an empty request body.
var errNoBody = errors.New("no JSON data provided")

// decode reads the request and builds its graph. On failure it writes the
// response itself and reports ok = false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*graphio.Request, *core.Graph, bool) {
	req, err := graphio.DecodeRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			s.fail(w, r, http.StatusRequestEntityTooLarge, err)
		case errors.Is(err, io.EOF):
			s.fail(w, r, http.StatusBadRequest, errNoBody)
		default:
			s.fail(w, r, http.StatusBadRequest, err)
		}
		return nil, nil, false
	}

	g, err := pathfind.BuildGraph(req.Graph)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return nil, nil, false
	}

	return req, g, true
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, req *graphio.Request, res *route.Result, err error) {
	switch {
	case err != nil:
		s.fail(w, r, statusFor(err), err)
	case res == nil:
		writeJSON(w, http.StatusNotFound, errorBody{
			Error: "No path found", Start: req.StartID(), End: req.EndID(),
		})
	default:
		entryFrom(r, s.log).WithField("algorithm", res.Algorithm).
			Debugf("found path of %d nodes, explored %d", len(res.Path), res.NodesExplored)
		writeJSON(w, http.StatusOK, resultBody{Success: true, Result: res})
	}
}

// fail writes err with status; server-side failures are logged.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		entryFrom(r, s.log).WithError(err).Error("search failed")
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// statusFor maps build and search errors to a status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, graphio.ErrMissingField),
		errors.Is(err, graphio.ErrMalformedInput),
		errors.Is(err, heuristic.ErrInvalidHeuristic),
		errors.Is(err, core.ErrNegativeWeight),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, core.ErrEmptyNodeID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
