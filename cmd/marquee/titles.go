package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var titleCmd = &cobra.Command{
	Use:   "title <movie|tv> <id>",
	Short: "Show a title's details",
	Args:  cobra.ExactArgs(2),
	RunE:  runTitleCmd,
}

var trailersCmd = &cobra.Command{
	Use:   "trailers <movie|tv> <id>",
	Short: "List a title's trailers",
	Long: `List YouTube trailers and teasers for a title.

Trailer lookups are guarded by a circuit breaker per media type. Once a
breaker opens, lookups return nothing until it is reset:

  marquee reset-trailers`,
	Args: cobra.ExactArgs(2),
	RunE: runTrailersCmd,
}

var resetTrailersCmd = &cobra.Command{
	Use:   "reset-trailers",
	Short: "Close the trailer circuit breakers",
	Args:  cobra.NoArgs,
	RunE:  runResetTrailersCmd,
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <tv-id> <season>",
	Short: "List the episodes of a season",
	Args:  cobra.ExactArgs(2),
	RunE:  runEpisodesCmd,
}

func init() {
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(trailersCmd)
	rootCmd.AddCommand(resetTrailersCmd)
	rootCmd.AddCommand(episodesCmd)
}

func parseKindAndID(args []string) (string, int64, error) {
	kind := args[0]
	if kind != "movie" && kind != "tv" {
		return "", 0, fmt.Errorf("type must be movie or tv, got %q", kind)
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid id: %s", args[1])
	}
	return kind, id, nil
}

func youtubeURL(key string) string {
	return "https://www.youtube.com/watch?v=" + key
}

func runTitleCmd(cmd *cobra.Command, args []string) error {
	kind, id, err := parseKindAndID(args)
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	t, err := client.Title(cmd.Context(), kind, id)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s %d not found", kind, id)
		}
		return fmt.Errorf("title failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, t)
	}

	d := t.Details
	name, date := d.Title, d.ReleaseDate
	if kind == "tv" {
		name, date = d.Name, d.FirstAirDate
	}
	fmt.Fprintf(out, "%s (%s)  %s\n", name, yearOf(date), formatRating(d.VoteAverage))
	if d.Overview != "" {
		fmt.Fprintf(out, "\n%s\n", d.Overview)
	}
	if len(t.Cast) > 0 {
		fmt.Fprintln(out, "\nCast:")
		for _, c := range t.Cast {
			fmt.Fprintf(out, "  %s\n", joinNonEmpty(" as ", c.Name, c.Character))
		}
	}
	if len(t.Trailers) > 0 {
		fmt.Fprintln(out, "\nTrailers:")
		for _, tr := range t.Trailers {
			fmt.Fprintf(out, "  %-8s %s  %s\n", tr.Type, youtubeURL(tr.Key), tr.Name)
		}
	}
	if len(t.Similar) > 0 {
		fmt.Fprintln(out)
		printItems(out, "Similar", t.Similar)
	}
	return nil
}

func runTrailersCmd(cmd *cobra.Command, args []string) error {
	kind, id, err := parseKindAndID(args)
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	trailers, err := client.Trailers(cmd.Context(), kind, id)
	if err != nil {
		return fmt.Errorf("trailers failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, TrailersResponse{Results: trailers})
	}
	if len(trailers) == 0 {
		fmt.Fprintln(out, "No trailers")
		return nil
	}
	for i, tr := range trailers {
		fmt.Fprintf(out, " %2d │ %-8s │ %s │ %s\n", i+1, tr.Type, youtubeURL(tr.Key), tr.Name)
	}
	return nil
}

func runResetTrailersCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	breakers, err := client.ResetTrailers(cmd.Context())
	if err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, BreakersResponse{Breakers: breakers})
	}
	printBreakers(out, breakers)
	return nil
}

func runEpisodesCmd(cmd *cobra.Command, args []string) error {
	tvID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || tvID <= 0 {
		return fmt.Errorf("invalid tv id: %s", args[0])
	}
	season, err := strconv.Atoi(args[1])
	if err != nil || season < 0 {
		return fmt.Errorf("invalid season: %s", args[1])
	}

	client := NewClient(serverURL)
	episodes, err := client.Episodes(cmd.Context(), tvID, season)
	if err != nil {
		return fmt.Errorf("episodes failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, EpisodesResponse{Episodes: episodes})
	}
	if len(episodes) == 0 {
		fmt.Fprintln(out, "No episodes")
		return nil
	}
	for _, e := range episodes {
		fmt.Fprintf(out, " E%02d │ %-10s │ %s │ %s\n",
			e.EpisodeNumber, e.AirDate, formatRating(e.VoteAverage), truncate(e.Name, 50))
	}
	return nil
}
