// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/vmunix/marquee/internal/charts"
	"github.com/vmunix/marquee/internal/tmdb"
)

// maxPage is the last page the provider serves for any list.
const maxPage = 500

// Config holds API server configuration.
type Config struct {
	Version string
	// CacheMaxAge is advertised in Cache-Control on cacheable responses.
	CacheMaxAge time.Duration
	// RateLimit is the per-client request rate; zero disables limiting.
	RateLimit rate.Limit
	RateBurst int
	Logger    *slog.Logger
}

// Server is the v1 API server.
type Server struct {
	deps     ServerDeps
	catalog  Catalog
	registry *charts.Registry
	cfg      Config
	limiter  *IPRateLimiter
	started  time.Time
	log      *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.CacheMaxAge <= 0 {
		cfg.CacheMaxAge = tmdb.DefaultTTL
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	s := &Server{
		deps:     deps,
		catalog:  deps.Catalog,
		registry: deps.Registry,
		cfg:      cfg,
		started:  time.Now(),
		log:      cfg.Logger.With("component", "api"),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = NewIPRateLimiter(cfg.RateLimit, burst)
	}
	return s, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Lists
	mux.HandleFunc("GET /api/v1/data", s.getData)
	mux.HandleFunc("GET /api/v1/search", s.search)
	mux.HandleFunc("GET /api/v1/charts", s.getChart)
	mux.HandleFunc("GET /api/v1/charts/index", s.listCharts)
	mux.HandleFunc("GET /api/v1/genres", s.getGenre)
	mux.HandleFunc("GET /api/v1/genres/index", s.listGenres)
	mux.HandleFunc("GET /api/v1/home", s.getHome)

	// Titles
	mux.HandleFunc("GET /api/v1/titles/{type}/{id}", s.getTitle)
	mux.HandleFunc("GET /api/v1/collections/{id}", s.getCollection)
	mux.HandleFunc("GET /api/v1/episodes", s.listEpisodes)

	// Trailers
	mux.HandleFunc("GET /api/v1/trailers", s.listTrailers)
	mux.HandleFunc("POST /api/v1/trailers/reset", s.resetTrailers)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Handler returns the routes wrapped in the standard middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	var h http.Handler = mux
	h = cors(h)
	if s.limiter != nil {
		h = RateLimitHandler(s.limiter, h)
	}
	h = logRequests(h, s.log)
	h = recoverPanics(h, s.log)
	h = requestID(h)
	return h
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Close()
	}
}

// Error response
type errorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// cacheable marks a response as revalidated after the configured interval.
func (s *Server) cacheable(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.cfg.CacheMaxAge.Seconds())))
}

var errBadPage = errors.New("page must be an integer between 1 and 500")

// queryPage reads the page parameter. Absent means 1.
func queryPage(r *http.Request) (int, error) {
	val := r.URL.Query().Get("page")
	if val == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(val)
	if err != nil || p < 1 || p > maxPage {
		return 0, errBadPage
	}
	return p, nil
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// requiredInt64 extracts a mandatory positive integer from the query string.
func requiredInt64(r *http.Request, name string) (int64, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return 0, fmt.Errorf("missing query parameter: %s", name)
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil || i < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, val)
	}
	return i, nil
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, idStr)
	}
	return id, nil
}
