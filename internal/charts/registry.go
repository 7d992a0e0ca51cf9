// Package charts maps human-facing chart names to stable slugs and to the
// provider query that serves each chart.
package charts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/slug"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for Suggest.
const suggestThreshold = 0.85

// Registry is a read-only set of chart definitions. It is safe for
// concurrent use once built.
type Registry struct {
	defs   []Definition
	byID   map[ID]int
	byName map[string]int
	bySlug map[string]int
}

// NewRegistry validates defs and builds the lookup indexes. Names, slugs and
// ids must be unique, and aliases must point at a non-alias chart.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs:   make([]Definition, len(defs)),
		byID:   make(map[ID]int, len(defs)),
		byName: make(map[string]int, len(defs)),
		bySlug: make(map[string]int, len(defs)),
	}
	copy(r.defs, defs)

	for i, d := range r.defs {
		if d.ID == 0 {
			return nil, fmt.Errorf("chart %q: missing id", d.Name)
		}
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("chart %d: empty name", d.ID)
		}
		if !d.Category.Valid() {
			return nil, fmt.Errorf("chart %q: invalid category %q", d.Name, d.Category)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("chart %q: duplicate id %d", d.Name, d.ID)
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate chart name %q", d.Name)
		}
		s := slug.Make(d.Name)
		if s == "" {
			return nil, fmt.Errorf("chart %q: empty slug", d.Name)
		}
		if j, dup := r.bySlug[s]; dup {
			return nil, fmt.Errorf("charts %q and %q share slug %q", r.defs[j].Name, d.Name, s)
		}
		r.byID[d.ID] = i
		r.byName[d.Name] = i
		r.bySlug[s] = i
	}

	for i, d := range r.defs {
		if !d.IsAlias() {
			continue
		}
		j, ok := r.byID[d.AliasOf]
		if !ok {
			return nil, fmt.Errorf("chart %q: alias of unknown chart %d", d.Name, d.AliasOf)
		}
		target := r.defs[j]
		if target.IsAlias() {
			return nil, fmt.Errorf("chart %q: alias of alias %q", d.Name, target.Name)
		}
		r.defs[i].Source = target.Source
	}

	return r, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := NewRegistry(definitions)
		if err != nil {
			panic("charts: " + err.Error())
		}
		defaultReg = reg
	})
	return defaultReg
}

// Slug returns the URL slug for a chart name.
func Slug(name string) string {
	return slug.Make(name)
}

// All returns every definition in display order.
func (r *Registry) All() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Get returns the definition for id.
func (r *Registry) Get(id ID) (Definition, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// NameFromSlug returns the chart name registered under slug.
func (r *Registry) NameFromSlug(s string) (string, bool) {
	i, ok := r.bySlug[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", false
	}
	return r.defs[i].Name, true
}

// Lookup resolves a chart by exact name or by slug.
func (r *Registry) Lookup(nameOrSlug string) (Definition, bool) {
	if i, ok := r.byName[nameOrSlug]; ok {
		return r.defs[i], true
	}
	if i, ok := r.bySlug[strings.ToLower(strings.TrimSpace(nameOrSlug))]; ok {
		return r.defs[i], true
	}
	return Definition{}, false
}

// Category returns the category of a chart. Unregistered names are movies.
func (r *Registry) Category(name string) media.Type {
	if d, ok := r.Lookup(name); ok {
		return d.Category
	}
	return media.Movie
}

// ByCategory returns the charts of one category in display order.
func (r *Registry) ByCategory(cat media.Type) []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Slugs returns every registered slug in display order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.defs))
	for i, d := range r.defs {
		out[i] = slug.Make(d.Name)
	}
	return out
}

// Suggest returns the chart whose slug is closest to s, if any is close enough.
func (r *Registry) Suggest(s string) (Definition, bool) {
	s = slug.Make(s)
	if s == "" {
		return Definition{}, false
	}
	best, bestScore := -1, float32(0)
	for i, d := range r.defs {
		score := edlib.JaroWinklerSimilarity(s, slug.Make(d.Name))
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < suggestThreshold {
		return Definition{}, false
	}
	return r.defs[best], true
}

// Section groups the charts of one category for the index page.
type Section struct {
	Title    string
	Category media.Type
	Charts   []Definition
}

// Sections returns one section per category in display order.
func (r *Registry) Sections() []Section {
	out := make([]Section, 0, len(media.Types))
	for _, cat := range media.Types {
		charts := r.ByCategory(cat)
		if len(charts) == 0 {
			continue
		}
		out = append(out, Section{Title: sectionTitles[cat], Category: cat, Charts: charts})
	}
	return out
}
