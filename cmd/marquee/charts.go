package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/paginate"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "List available charts",
	Args:  cobra.NoArgs,
	RunE:  runChartsCmd,
}

var chartCmd = &cobra.Command{
	Use:   "chart <name-or-slug>...",
	Short: "Show a chart",
	Long: `Show the titles in a chart.

Examples:
  marquee chart trending-movies
  marquee chart "Top Rated TV" --pages 3
  marquee chart airing-now --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChartCmd,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().Int("page", 1, "First page to show")
	chartCmd.Flags().Int("pages", 1, "Number of pages to load")
}

func runChartsCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	sections, err := client.Charts(cmd.Context())
	if err != nil {
		return fmt.Errorf("list charts failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, sections)
	}

	for i, sec := range sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s:\n", sec.Title)
		for _, c := range sec.Charts {
			line := fmt.Sprintf("  %-28s %s", c.Slug, c.Name)
			if c.AliasOf != "" {
				line += fmt.Sprintf(" (same as %s)", c.AliasOf)
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func runChartCmd(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	start, _ := cmd.Flags().GetInt("page")
	pages, _ := cmd.Flags().GetInt("pages")
	if start < 1 || start > maxPage {
		return fmt.Errorf("invalid page: %d (must be 1-%d)", start, maxPage)
	}
	pages = clampPages(start, pages)

	client := NewClient(serverURL)
	items, err := loadChart(cmd, client, name, start, pages)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, ItemsResponse{Items: items})
	}
	printItems(out, name, items)
	return nil
}

// maxPage is the last page the provider serves for any list.
const maxPage = 500

// clampPages bounds a page count so the last requested page is at most maxPage.
func clampPages(start, pages int) int {
	if pages < 1 {
		pages = 1
	}
	if last := start + pages - 1; last > maxPage {
		pages = maxPage - start + 1
	}
	return pages
}

// loadChart fetches pages [start, start+pages) and stops early at the end
// of the chart.
func loadChart(cmd *cobra.Command, client *Client, name string, start, pages int) ([]Item, error) {
	ctx := cmd.Context()
	first, err := client.Chart(ctx, name, start)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Suggestion != "" {
			return nil, fmt.Errorf("chart %q not found (did you mean %q?)", name, apiErr.Suggestion)
		}
		if isNotFound(err) {
			return nil, fmt.Errorf("chart %q not found; run 'marquee charts' to list them", name)
		}
		return nil, fmt.Errorf("chart failed: %w", err)
	}

	acc := paginate.New(func(ctx context.Context, page int) ([]Item, error) {
		return client.Chart(ctx, name, page)
	}, first, paginate.WithTrackEnd(true), paginate.WithStartPage(start))

	for i := 1; i < pages && acc.HasMore(); i++ {
		if _, err := acc.LoadMore(ctx); err != nil {
			if errors.Is(err, paginate.ErrExhausted) {
				break
			}
			return acc.Items(), fmt.Errorf("load page %d: %w", acc.Page()+1, err)
		}
	}
	return acc.Items(), nil
}
