package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vmunix/marquee/internal/config"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Config file (default: $MARQUEE_CONFIG, ./config.toml, then XDG and /etc)")
	initConfig := flag.Bool("init", false, "Write a default config to -config or the XDG path, then exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	switch {
	case *showVersion:
		fmt.Printf("marqueed %s\n", version)
	case *initConfig:
		path, err := writeDefaultConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s; set TMDB_API_KEY before starting\n", path)
	default:
		if err := runServer(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// writeDefaultConfig writes the embedded default config and returns its path.
// An existing file is never overwritten.
func writeDefaultConfig(path string) (string, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.WriteDefault(path); err != nil {
		return "", err
	}
	return path, nil
}
