package v1

import (
	"net/http"
	"time"

	"github.com/vmunix/marquee/internal/breaker"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

type trailersResponse struct {
	Results []tmdb.Trailer `json:"results"`
}

func (s *Server) listTrailers(w http.ResponseWriter, r *http.Request) {
	kind, ok := tmdb.ParseKind(r.URL.Query().Get("type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be movie or tv")
		return
	}
	id, err := requiredInt64(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, trailersResponse{Results: s.catalog.Trailers(r.Context(), kind, id)})
}

type breakersResponse struct {
	Breakers []breaker.Snapshot `json:"breakers"`
}

func (s *Server) resetTrailers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, breakersResponse{Breakers: s.catalog.ResetTrailers()})
}

type episodesResponse struct {
	Episodes []tmdb.Episode `json:"episodes"`
}

func (s *Server) listEpisodes(w http.ResponseWriter, r *http.Request) {
	tvID, err := requiredInt64(r, "tvId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	season := queryInt(r, "seasonNumber", -1)
	if season < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_SEASON", "seasonNumber must be a non-negative integer")
		return
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, episodesResponse{Episodes: s.catalog.Episodes(r.Context(), tvID, season)})
}

type titleResponse struct {
	Type     string                  `json:"type"`
	Details  any                     `json:"details"`
	Cast     []tmdb.CastMember       `json:"cast"`
	Similar  []media.ChartResultItem `json:"similar"`
	Trailers []tmdb.Trailer          `json:"trailers"`
}

func (s *Server) getTitle(w http.ResponseWriter, r *http.Request) {
	kind, ok := tmdb.ParseKind(r.PathValue("type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be movie or tv")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	t, ok := s.catalog.Title(r.Context(), kind, id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "title not found")
		return
	}
	resp := titleResponse{
		Type:     kind.String(),
		Cast:     t.Cast,
		Similar:  t.Similar,
		Trailers: t.Trailers,
	}
	if t.Movie != nil {
		resp.Details = t.Movie
	} else {
		resp.Details = t.TV
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	col, ok := s.catalog.Collection(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "collection not found")
		return
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, col)
}

type statusResponse struct {
	Status   string             `json:"status"`
	Version  string             `json:"version"`
	Cache    string             `json:"cache"`
	Charts   int                `json:"charts"`
	Uptime   string             `json:"uptime"`
	Breakers []breaker.Snapshot `json:"breakers"`
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:   "ok",
		Version:  s.cfg.Version,
		Cache:    "none",
		Charts:   len(s.registry.All()),
		Uptime:   time.Since(s.started).Truncate(time.Second).String(),
		Breakers: s.catalog.TrailerBreakers(),
	}
	if s.deps.Cache != nil {
		resp.Cache = s.deps.Cache.Name()
	}
	for _, b := range resp.Breakers {
		if b.State == breaker.Open {
			resp.Status = "degraded"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
