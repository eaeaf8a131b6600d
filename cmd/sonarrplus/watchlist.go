package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/settings"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "List the local watchlist",
	Args:  cobra.NoArgs,
	RunE:  runWatchlistCmd,
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Remember the best TMDB match for a title",
	Long: `Search TMDB and put the first match on the watchlist.

Examples:
  sonarrplus watchlist add "Slow Horses"
  sonarrplus watchlist add severance`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatchlistAddCmd,
}

var watchlistRemoveCmd = &cobra.Command{
	Use:     "remove <tmdb-id>",
	Aliases: []string{"rm"},
	Short:   "Forget a watchlist show",
	Args:    cobra.ExactArgs(1),
	RunE:    runWatchlistRemoveCmd,
}

func init() {
	rootCmd.AddCommand(watchlistCmd)
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)
}

func runWatchlistCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		shows, err := a.catalog.Watchlist(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, shows)
		}
		if len(shows) == 0 {
			fmt.Fprintln(out, "Watchlist is empty")
			return nil
		}
		fmt.Fprintf(out, "Watchlist (%d):\n\n", len(shows))
		printShows(out, shows)
		return nil
	})
}

func runWatchlistAddCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		results, err := a.catalog.SearchDiscovery(ctx, query)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no show found for %q", query)
		}
		show := results[0]
		if err := a.catalog.AddToWatchlist(ctx, show); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d) to the watchlist\n", show.Name, show.ID)
		return nil
	})
}

func runWatchlistRemoveCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "tmdb id")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		err := a.catalog.RemoveFromWatchlist(ctx, id)
		if errors.Is(err, settings.ErrNotFound) {
			return fmt.Errorf("show %d is not on the watchlist", id)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d from the watchlist\n", id)
		return nil
	})
}
