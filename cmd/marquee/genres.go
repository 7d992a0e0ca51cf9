package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/genres"
	"github.com/vmunix/marquee/internal/media"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genres for a category",
	Args:  cobra.NoArgs,
	RunE:  runGenresCmd,
}

var genreCmd = &cobra.Command{
	Use:   "genre <movies|shows> <genre>...",
	Short: "List titles in a genre",
	Long: `List titles in a genre. The genre may be a label, a slug or an id.

Examples:
  marquee genre movies "Science Fiction"
  marquee genre shows crime --page 2
  marquee genre movies 878`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGenreCmd,
}

func init() {
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(genreCmd)
	genresCmd.Flags().String("category", "movie", "Category (movie, tv, anime, cartoon)")
	genreCmd.Flags().Int("page", 1, "Result page")
}

func runGenresCmd(cmd *cobra.Command, _ []string) error {
	category, _ := cmd.Flags().GetString("category")

	client := NewClient(serverURL)
	list, err := client.Genres(cmd.Context(), category)
	if err != nil {
		return fmt.Errorf("list genres failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, list)
	}
	for _, g := range list {
		fmt.Fprintf(out, "  %6d  %-20s %s\n", g.ID, g.Slug, g.Label)
	}
	return nil
}

// resolveGenre maps a label, slug or numeric id to a genre id.
func resolveGenre(typ, arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil && id > 0 {
		return id, nil
	}
	category := media.Movie
	if typ == "shows" {
		category = media.TV
	}
	g, ok := genres.Lookup(category, arg)
	if !ok {
		return 0, fmt.Errorf("unknown %s genre %q", typ, arg)
	}
	return g.ID, nil
}

func runGenreCmd(cmd *cobra.Command, args []string) error {
	typ := args[0]
	if typ != "movies" && typ != "shows" {
		return fmt.Errorf("type must be movies or shows, got %q", typ)
	}
	label := strings.Join(args[1:], " ")
	id, err := resolveGenre(typ, label)
	if err != nil {
		return err
	}
	page, _ := cmd.Flags().GetInt("page")

	client := NewClient(serverURL)
	records, err := client.Genre(cmd.Context(), typ, id, page)
	if err != nil {
		return fmt.Errorf("genre failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, records)
	}
	printRecords(out, label, records)
	return nil
}
