package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathfind/config"
)

const (
	// Service and Version are reported by /api/health and /api/docs.
	Service = "Pathfinding API"
	Version = "1.0.0"

	maxBodyBytes    = 10 << 20
	shutdownTimeout = 5 * time.Second
)

// Server routes API calls to the search packages.
type Server struct {
	cfg    *config.Config
	log    logrus.FieldLogger
	router *httprouter.Router
}

// New wires the routes. A nil cfg uses config.Default(); a nil logger uses
// the logrus standard logger.
func New(cfg *config.Config, logger logrus.FieldLogger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Server{cfg: cfg, log: logger, router: httprouter.New()}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.GET("/api/health", s.health)
	s.router.GET("/api/docs", s.docs)
	s.router.POST("/api/pathfind/dijkstra", s.dijkstra)
	s.router.POST("/api/pathfind/astar", s.astar)
	s.router.POST("/api/pathfind/compare", s.compare)

	s.router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	})
	s.router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v interface{}) {
		entryFrom(r, s.log).Errorf("panic: %v", v)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// Handler returns the router wrapped with request IDs, CORS, access
// logging and the per-request timeout.
func (s *Server) Handler() http.Handler {
	timeoutBody := `{"error":"request timed out"}`
	var h http.Handler = http.TimeoutHandler(s.router, s.cfg.Server.RequestTimeout, timeoutBody)
	h = s.logRequests(h)
	h = s.cors(h)
	h = s.requestID(h)

	return h
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully, forcing a close if draining takes too long.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.Server.RequestTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Infof("Start server on http://%s", ln.Addr())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server: serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.Errorf("Failed shutdown gracefully - force shutdown: %v", err)
		_ = srv.Close()
		return errors.Wrap(err, "server: shutdown")
	}
	s.log.Info("Server stopped")

	return nil
}

// ListenAndServe listens on cfg.Server.Addr and serves until ctx is done.
func ListenAndServe(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) error {
	s := New(cfg, logger)
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return errors.Wrapf(err, "server: listen on %s", s.cfg.Server.Addr)
	}

	return s.Serve(ctx, ln)
}
