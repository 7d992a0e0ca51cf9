package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server status and trailer breakers",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, status)
	}
	printStatus(out, serverURL, status)
	return nil
}

func printStatus(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "Server:     %s (%s)\n", server, s.Status)
	fmt.Fprintf(w, "Version:    %s\n", s.Version)
	fmt.Fprintf(w, "Uptime:     %s\n", s.Uptime)
	fmt.Fprintf(w, "Cache:      %s\n", s.Cache)
	fmt.Fprintf(w, "Charts:     %d\n", s.Charts)
	if len(s.Breakers) > 0 {
		fmt.Fprintln(w)
		printBreakers(w, s.Breakers)
	}
}

func printBreakers(w io.Writer, breakers []Breaker) {
	fmt.Fprintf(w, "  %-16s │ %-6s │ %s\n", "BREAKER", "STATE", "FAILURES")
	fmt.Fprintln(w, "──────────────────┼────────┼─────────")
	for _, b := range breakers {
		fmt.Fprintf(w, "  %-16s │ %-6s │ %d\n", b.Name, b.State, b.Failures)
	}
}
