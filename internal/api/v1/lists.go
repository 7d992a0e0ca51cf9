package v1

import (
	"net/http"
	"strings"

	"github.com/vmunix/marquee/internal/charts"
	"github.com/vmunix/marquee/internal/genres"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/slug"
)

type itemsResponse struct {
	Items []media.ChartResultItem `json:"items"`
}

func (s *Server) getData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	// Non-numeric pages fall back to the first page on this route.
	page := queryInt(r, "page", 1)
	if page < 1 || page > maxPage {
		page = 1
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, s.catalog.Data(r.Context(), q.Get("type"), q.Get("category"), page))
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: s.catalog.Search(r.Context(), r.URL.Query().Get("q"), page)})
}

func (s *Server) getChart(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("slug"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_SLUG", "slug is required")
		return
	}
	page, err := queryPage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error())
		return
	}

	items, ok := s.catalog.Chart(r.Context(), name, page)
	if !ok {
		resp := errorResponse{Error: "chart not found", Code: "NOT_FOUND"}
		if d, found := s.registry.Suggest(name); found {
			resp.Suggestion = charts.Slug(d.Name)
		}
		writeJSON(w, http.StatusNotFound, resp)
		return
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, itemsResponse{Items: items})
}

type chartEntry struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	AliasOf string `json:"alias_of,omitempty"`
}

type chartSection struct {
	Title    string       `json:"title"`
	Category media.Type   `json:"category"`
	Charts   []chartEntry `json:"charts"`
}

func (s *Server) listCharts(w http.ResponseWriter, r *http.Request) {
	sections := s.registry.Sections()
	resp := make([]chartSection, len(sections))
	for i, sec := range sections {
		entries := make([]chartEntry, len(sec.Charts))
		for j, d := range sec.Charts {
			entries[j] = chartEntry{Name: d.Name, Slug: charts.Slug(d.Name)}
			if target, ok := s.registry.Get(d.AliasOf); d.IsAlias() && ok {
				entries[j].AliasOf = charts.Slug(target.Name)
			}
		}
		resp[i] = chartSection{Title: sec.Title, Category: sec.Category, Charts: entries}
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getGenre(w http.ResponseWriter, r *http.Request) {
	typ := r.URL.Query().Get("type")
	if typ != "movies" && typ != "shows" {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be movies or shows")
		return
	}
	genreID, err := requiredInt64(r, "genreId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_GENRE", err.Error())
		return
	}
	page, err := queryPage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error())
		return
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, s.catalog.Genre(r.Context(), typ, int(genreID), page))
}

type genreEntry struct {
	Label string `json:"label"`
	ID    int    `json:"id"`
	Slug  string `json:"slug"`
}

func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	// Unknown categories fall back to the movie table.
	cat, _ := media.ParseType(r.URL.Query().Get("category"))
	table := genres.For(cat)
	resp := make([]genreEntry, len(table))
	for i, g := range table {
		resp[i] = genreEntry{Label: g.Label, ID: g.ID, Slug: slug.Make(g.Label)}
	}
	s.cacheable(w)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getHome(w http.ResponseWriter, r *http.Request) {
	s.cacheable(w)
	writeJSON(w, http.StatusOK, s.catalog.Home(r.Context()))
}
