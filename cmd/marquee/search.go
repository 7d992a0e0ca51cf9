package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search movies and shows",
	Long: `Search movies and shows by title.

Examples:
  marquee search "The Matrix"
  marquee search dune --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Result page")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")

	client := NewClient(serverURL)
	items, err := client.Search(cmd.Context(), query, page)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, ItemsResponse{Items: items})
	}
	printItems(out, fmt.Sprintf("Results for %q", query), items)
	return nil
}
