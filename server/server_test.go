package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/config"
)

const collinearRequest = `{
  "graph": {
    "nodes": [{"id": "A", "x": 0, "y": 0}, {"id": "B", "x": 1, "y": 0}, {"id": "C", "x": 2, "y": 0}, "Z"],
    "edges": [
      {"from": "A", "to": "B", "weight": 1},
      {"from": "B", "to": "C", "weight": 2},
      {"from": "A", "to": "C", "weight": 5}
    ]
  },
  "start": "A",
  "end": "C"
}`

func newTestServer(t *testing.T) (*Server, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return New(config.Default(), logger), hook
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())

	return out
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rr := do(t, s, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"Pathfinding API","version":"1.0.0"}`, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rr.Header().Get(HeaderRequestID))
}

func TestDocs(t *testing.T) {
	s, _ := newTestServer(t)
	rr := do(t, s, http.MethodGet, "/api/docs", "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Len(t, body["endpoints"], 5)
	assert.Equal(t, []interface{}{"euclidean", "manhattan"}, body["heuristics"])
}

func TestDijkstra(t *testing.T) {
	s, _ := newTestServer(t)
	rr := do(t, s, http.MethodPost, "/api/pathfind/dijkstra", collinearRequest)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var body resultBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"A", "B", "C"}, body.Result.Path)
	assert.Equal(t, 3.0, body.Result.Distance)
	assert.Equal(t, "dijkstra", string(body.Result.Algorithm))
}

func TestAStar_Heuristics(t *testing.T) {
	s, _ := newTestServer(t)
	cases := map[string]string{
		"":          "astar_euclidean",
		"manhattan": "astar_manhattan",
	}
	for tag, want := range cases {
		body := strings.Replace(collinearRequest, `"end": "C"`, `"end": "C", "heuristic": "`+tag+`"`, 1)
		rr := do(t, s, http.MethodPost, "/api/pathfind/astar", body)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var res resultBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		assert.Equal(t, want, string(res.Result.Algorithm))
		assert.Equal(t, 3.0, res.Result.Distance)
	}
}

func TestCompare(t *testing.T) {
	s, _ := newTestServer(t)
	rr := do(t, s, http.MethodPost, "/api/pathfind/compare", collinearRequest)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "A", body["start"])
	cmp, ok := body["comparisons"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, cmp, 3)
	assert.Contains(t, cmp, "dijkstra")
	assert.Contains(t, cmp, "astar_euclidean")
	assert.Contains(t, cmp, "astar_manhattan")
}

func TestErrors(t *testing.T) {
	s, _ := newTestServer(t)
	noPath := strings.Replace(collinearRequest, `"end": "C"`, `"end": "Z"`, 1)

	cases := []struct {
		name, path, body string
		status           int
		contains         string
	}{
		{"empty body", "/api/pathfind/dijkstra", "", http.StatusBadRequest, "no JSON data"},
		{"bad json", "/api/pathfind/dijkstra", `{"graph":`, http.StatusBadRequest, "decode request"},
		{"missing start", "/api/pathfind/dijkstra", `{"graph":{},"end":"B"}`, http.StatusBadRequest, "start"},
		{"missing from", "/api/pathfind/dijkstra", `{"graph":{"edges":[{"to":"B"}]},"start":"A","end":"B"}`, http.StatusBadRequest, "malformed"},
		{"negative weight", "/api/pathfind/dijkstra", `{"graph":{"edges":[{"from":"A","to":"B","weight":-1}]},"start":"A","end":"B"}`, http.StatusBadRequest, "negative"},
		{"bad heuristic", "/api/pathfind/astar", strings.Replace(collinearRequest, `"end": "C"`, `"end": "C", "heuristic": "random"`, 1), http.StatusBadRequest, "invalid heuristic"},
		{"no path", "/api/pathfind/dijkstra", noPath, http.StatusNotFound, "No path found"},
		{"no path guided", "/api/pathfind/astar", noPath, http.StatusNotFound, "No path found"},
		{"no path compare", "/api/pathfind/compare", noPath, http.StatusNotFound, "any algorithm"},
		{"unknown route", "/api/nothing", "", http.StatusNotFound, "not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			method := http.MethodPost
			if tc.path == "/api/nothing" {
				method = http.MethodGet
			}
			rr := do(t, s, method, tc.path, tc.body)
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())
			body := decodeBody(t, rr)
			assert.Contains(t, body["error"], tc.contains)
		})
	}
}

func TestPreflight(t *testing.T) {
	s, _ := newTestServer(t)
	rr := do(t, s, http.MethodOptions, "/api/pathfind/astar", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRequestID_Propagated(t *testing.T) {
	s, hook := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(HeaderRequestID))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc-123", entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestServe_Shutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestAStar_ConfiguredDefaultHeuristic(t *testing.T) {
	cfg := config.Default()
	cfg.Search.DefaultHeuristic = "manhattan"
	logger, _ := logtest.NewNullLogger()
	s := New(cfg, logger)

	rr := do(t, s, http.MethodPost, "/api/pathfind/astar", collinearRequest)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var res resultBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "astar_manhattan", string(res.Result.Algorithm))
}
