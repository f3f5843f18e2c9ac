// Package server exposes a loaded street graph over a read-only HTTP API.
//
// The graph must be fully built before New is called. Handlers only read
// from it, so requests are served concurrently without locking.
//
// # Routes
//
//	GET /healthz
//	GET /stats
//	GET /neighborhoods                       ?top=N ranks by degree
//	GET /neighborhoods/{name}                404 for unknown names
//	GET /neighborhoods/{name}/neighbors      ?limit=N
//	GET /neighborhoods/{name}/expand         ?depth=D, node-link view
//	GET /between                             ?from=A&to=B
//	GET /regions
//	GET /metrics                             when a metrics handler is set
//
// Errors are JSON objects carrying the codes from pkg/errors:
//
//	{"error": {"code": "NOT_FOUND", "message": "unknown neighborhood \"Pina\""}}
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/citymesh/citygraph/pkg/multigraph"
	"github.com/citymesh/citygraph/pkg/nodelink"
)

// Options configures a Server.
type Options struct {
	Bands        nodelink.Options
	DefaultDepth int
	MaxDepth     int
	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler
	Logger  *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Bands == (nodelink.Options{}) {
		o.Bands = nodelink.DefaultOptions()
	}
	if o.DefaultDepth < 1 {
		o.DefaultDepth = 1
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Server serves read-only queries over one graph.
type Server struct {
	graph  *multigraph.Graph
	opts   Options
	router chi.Router
}

// New builds the router for g.
func New(g *multigraph.Graph, opts Options) *Server {
	s := &Server{graph: g, opts: opts.withDefaults()}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(s.recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Route("/neighborhoods", func(r chi.Router) {
		r.Get("/", s.handleNeighborhoods)
		r.Get("/{name}", s.handleNeighborhood)
		r.Get("/{name}/neighbors", s.handleNeighbors)
		r.Get("/{name}/expand", s.handleExpand)
	})
	r.Get("/between", s.handleBetween)
	r.Get("/regions", s.handleRegions)
	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.opts.Metrics)
	}
	r.NotFound(s.handleNotFound)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("Listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
