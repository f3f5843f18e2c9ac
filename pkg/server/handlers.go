package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apperr "github.com/citymesh/citygraph/pkg/errors"
	"github.com/citymesh/citygraph/pkg/multigraph"
	"github.com/citymesh/citygraph/pkg/nodelink"
)

// Neighborhood is a vertex with its degree.
type Neighborhood struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Degree int    `json:"degree"`
}

// Connection is one half-edge seen from its origin.
type Connection struct {
	To       string  `json:"to"`
	Street   string  `json:"street"`
	Distance float64 `json:"distance"`
}

// NeighborsResponse lists the connections of one neighborhood.
type NeighborsResponse struct {
	Name      string       `json:"name"`
	Degree    int          `json:"degree"`
	Neighbors []Connection `json:"neighbors"`
}

// BetweenResponse lists every street joining two neighborhoods.
type BetweenResponse struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Streets []Connection `json:"streets"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeNotFound, apperr.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := apperr.GetCode(err)
	if code == "" {
		code = apperr.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{Error: errorDetail{Code: code, Message: apperr.UserMessage(err)}})
}

func connections(edges []multigraph.Edge) []Connection {
	out := make([]Connection, len(edges))
	for i, e := range edges {
		out[i] = Connection{To: e.To, Street: e.Label, Distance: e.Weight}
	}
	return out
}

// nameParam reads and validates the {name} path segment. Names are trimmed
// the same way the graph trims keys on insertion.
func nameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	// chi routes on RawPath when the path holds escapes Path cannot keep.
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			return "", apperr.Wrap(apperr.ErrCodeInvalidInput, err, "malformed neighborhood name %q", name)
		}
		name = unescaped
	}
	if err := apperr.ValidateName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s must be an integer, got %q", key, raw)
	}
	return n, nil
}

func (s *Server) neighborhood(key string) Neighborhood {
	n := Neighborhood{Name: key, Degree: s.graph.Degree(key)}
	if v, ok := s.graph.Vertex(key); ok {
		n.Region = v.Region
	}
	return n
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, apperr.New(apperr.ErrCodeNotFound, "no route for %s", r.URL.Path))
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.graph.Stats())
}

func (s *Server) handleNeighborhoods(w http.ResponseWriter, r *http.Request) {
	top, err := intQuery(r, "top", -1)
	if err != nil {
		writeError(w, err)
		return
	}

	var keys []string
	if top >= 0 {
		keys = s.graph.Ranked(top)
	} else {
		keys = s.graph.Keys()
	}
	out := make([]Neighborhood, len(keys))
	for i, k := range keys {
		out[i] = s.neighborhood(k)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleNeighborhood(w http.ResponseWriter, r *http.Request) {
	name, err := nameParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, ok := s.graph.Vertex(name)
	if !ok {
		writeError(w, apperr.New(apperr.ErrCodeNotFound, "unknown neighborhood %q", name))
		return
	}
	writeJSON(w, http.StatusOK, s.neighborhood(v.Name))
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	name, err := nameParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := intQuery(r, "limit", -1)
	if err != nil {
		writeError(w, err)
		return
	}

	edges := s.graph.Neighbors(name)
	if limit >= 0 && limit < len(edges) {
		edges = edges[:limit]
	}
	writeJSON(w, http.StatusOK, NeighborsResponse{
		Name:      name,
		Degree:    s.graph.Degree(name),
		Neighbors: connections(edges),
	})
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	name, err := nameParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	depth, err := intQuery(r, "depth", s.opts.DefaultDepth)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := apperr.ValidateDepth(depth, s.opts.MaxDepth); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nodelink.FromExpansion(s.graph, name, depth, s.opts.Bands))
}

func (s *Server) handleBetween(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	for _, name := range []string{from, to} {
		if err := apperr.ValidateName(name); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, BetweenResponse{
		From:    from,
		To:      to,
		Streets: connections(s.graph.EdgesBetween(from, to)),
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.graph.Regions())
}
