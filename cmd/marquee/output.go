package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func formatYear(y *int) string {
	if y == nil {
		return "----"
	}
	return strconv.Itoa(*y)
}

func formatRating(v float64) string {
	if v == 0 {
		return "  - "
	}
	return fmt.Sprintf("%4.1f", v)
}

// yearOf returns the year of a "2024-03-01" date, or "----".
func yearOf(date string) string {
	if len(date) < 4 {
		return "----"
	}
	return date[:4]
}

func printItems(w io.Writer, heading string, items []Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results")
		return
	}
	fmt.Fprintf(w, "%s (%d):\n\n", heading, len(items))
	fmt.Fprintf(w, "  # │ %-44s │ %4s │ %-7s │ %s\n", "TITLE", "YEAR", "TYPE", "RATING")
	fmt.Fprintln(w, "────┼──────────────────────────────────────────────┼──────┼─────────┼───────")
	for i, it := range items {
		fmt.Fprintf(w, " %2d │ %-44s │ %4s │ %-7s │ %s\n",
			i+1, truncate(it.Title, 44), formatYear(it.Year), it.MediaType, formatRating(it.VoteAverage))
	}
}

func printRecords(w io.Writer, heading string, records []Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results")
		return
	}
	fmt.Fprintf(w, "%s (%d):\n\n", heading, len(records))
	fmt.Fprintf(w, "  # │ %-44s │ %4s │ %s\n", "TITLE", "YEAR", "RATING")
	fmt.Fprintln(w, "────┼──────────────────────────────────────────────┼──────┼───────")
	for i, r := range records {
		fmt.Fprintf(w, " %2d │ %-44s │ %4s │ %s\n",
			i+1, truncate(r.DisplayTitle(), 44), yearOf(r.Date()), formatRating(r.VoteAverage))
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
