package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Browse movie, TV, anime and cartoon charts",
	Long: `marquee browses what is trending, top rated, airing and upcoming.

Charts are grouped into movies, TV, anime and cartoons and addressed by
slug ("marquee charts" lists them). Genres, search, title details,
season episodes and YouTube trailers come from the same catalog.

Results are served by marqueed, which fronts The Movie Database.`,
	SilenceUsage:      true,
	PersistentPreRunE: checkServerURL,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8484", "marqueed base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw API responses as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")
}

// checkServerURL rejects a --server value that is not an absolute http(s) URL.
func checkServerURL(_ *cobra.Command, _ []string) error {
	u, err := url.Parse(serverURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid --server %q: want http(s)://host[:port]", serverURL)
	}
	return nil
}
