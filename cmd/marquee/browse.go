package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data <movies|shows> <category>",
	Short: "Show a raw provider list",
	Long: `Show a raw provider list by type and category.

Examples:
  marquee data movies upcoming
  marquee data shows on_air --page 2
  marquee data shows anime_top`,
	Args: cobra.ExactArgs(2),
	RunE: runDataCmd,
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the landing page carousels",
	Args:  cobra.NoArgs,
	RunE:  runHomeCmd,
}

func init() {
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(homeCmd)
	dataCmd.Flags().Int("page", 1, "Result page")
	homeCmd.Flags().Int("limit", 5, "Titles shown per carousel")
}

func runDataCmd(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")

	client := NewClient(serverURL)
	records, err := client.Data(cmd.Context(), args[0], args[1], page)
	if err != nil {
		return fmt.Errorf("data failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, records)
	}
	printRecords(out, args[0]+"/"+args[1], records)
	return nil
}

func runHomeCmd(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	home, err := client.Home(cmd.Context())
	if err != nil {
		return fmt.Errorf("home failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, home)
	}

	if len(home.Featured) > 0 {
		fmt.Fprintln(out, "Featured:")
		for _, it := range home.Featured {
			fmt.Fprintf(out, "  %s (%s)\n", it.Title, formatYear(it.Year))
		}
	}
	for _, sec := range home.Sections {
		fmt.Fprintf(out, "\n%s [%s]:\n", sec.Title, sec.Slug)
		if len(sec.Items) == 0 {
			fmt.Fprintln(out, "  (unavailable)")
			continue
		}
		for i, it := range sec.Items {
			if limit > 0 && i >= limit {
				fmt.Fprintf(out, "  ... %d more\n", len(sec.Items)-limit)
				break
			}
			fmt.Fprintf(out, "  %s │ %s\n", formatRating(it.VoteAverage), it.Title)
		}
	}
	return nil
}
