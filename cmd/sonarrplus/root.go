package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	jsonOutput  bool
	traceEvents bool
)

var rootCmd = &cobra.Command{
	Use:   "sonarrplus",
	Short: "Discover TV shows and manage a Sonarr library",
	Long: `sonarrplus - browse TMDB discovery rails and manage a Sonarr library

Browse trending, popular, top rated and per-genre shows, add them to
Sonarr, toggle season and episode monitoring, watch the download queue
and keep a local watchlist.

Run 'sonarrplus connect <url> <api-key>' first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&traceEvents, "trace", false, "Print catalog events to stderr as they happen")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("sonarrplus {{.Version}}\n")
}
