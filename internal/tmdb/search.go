package tmdb

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type multiResult struct {
	MediaType string `json:"media_type"`
	MediaRecord
}

// NormalizeQuery trims a free-text query, drops angle brackets, collapses
// whitespace and composes Unicode so equivalent spellings share a request.
func NormalizeQuery(q string) string {
	q = strings.NewReplacer("<", "", ">", "").Replace(q)
	q = strings.Join(strings.Fields(q), " ")
	return norm.NFC.String(q)
}

// Search runs a multi search and keeps only movie and TV results.
// An empty query returns nil without contacting the provider.
func (c *Client) Search(ctx context.Context, query string, page int) ([]MediaRecord, error) {
	query = NormalizeQuery(query)
	if query == "" {
		return nil, nil
	}

	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"page":          {strconv.Itoa(normalizePage(page))},
	}
	body, err := c.get(ctx, "search/multi", params, NoStore)
	if err != nil {
		return nil, err
	}
	results, err := decodeResults[multiResult]("search/multi", body)
	if err != nil {
		return nil, err
	}

	records := make([]MediaRecord, 0, len(results))
	for _, res := range results {
		kind, ok := ParseKind(res.MediaType)
		if !ok || res.ID == 0 {
			continue
		}
		rec := res.MediaRecord
		rec.Kind = kind
		if kind == KindMovie {
			rec.Title = firstNonEmpty(rec.Title, rec.Name, "Untitled")
		} else {
			rec.Name = firstNonEmpty(rec.Name, rec.Title, "Untitled")
		}
		records = append(records, rec)
	}
	return records, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
