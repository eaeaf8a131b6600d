package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/catalog"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [category]",
	Short: "Browse TMDB discovery rails",
	Long: `Browse a TMDB discovery rail.

Categories are trending, popular, top-rated, a genre name ("Drama",
"Sci-Fi & Fantasy") or a TMDB genre id. Without a category the trending
rail is shown; --all loads every rail concurrently.

Examples:
  sonarrplus discover
  sonarrplus discover top-rated
  sonarrplus discover comedy -n 5
  sonarrplus discover --all --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiscoverCmd,
}

var discoverCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List discovery categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats := catalog.Categories()
		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, cats)
		}
		for _, c := range cats {
			fmt.Fprintf(out, "  %-12s %s\n", c, c.Label())
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search TMDB (or Sonarr's lookup with --lookup) for shows",
	Long: `Search for shows by title.

By default TMDB is searched. --lookup asks Sonarr's series lookup
instead; those results carry TVDB ids and can be passed to 'add'.

Examples:
  sonarrplus search "the expanse"
  sonarrplus search --lookup severance`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.AddCommand(discoverCategoriesCmd)
	discoverCmd.Flags().Bool("all", false, "Load every rail")
	discoverCmd.Flags().IntP("limit", "n", 20, "Shows per rail (0 for all)")

	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("lookup", false, "Search through Sonarr's lookup")
	searchCmd.Flags().IntP("limit", "n", 20, "Maximum results (0 for all)")
}

func runDiscoverCmd(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	limit, _ := cmd.Flags().GetInt("limit")
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		out := cmd.OutOrStdout()

		if all {
			rails, err := a.catalog.DiscoverAll(ctx)
			if len(rails) == 0 && err != nil {
				return err
			}
			if err != nil {
				a.log.Warn("some rails failed", "error", err)
			}
			if jsonOutput {
				byName := make(map[string][]catalog.Show, len(rails))
				for c, shows := range rails {
					byName[string(c)] = capShows(shows, limit)
				}
				return printJSON(out, byName)
			}
			for _, c := range catalog.Categories() {
				shows, ok := rails[c]
				if !ok {
					continue
				}
				fmt.Fprintf(out, "%s (%d):\n", c.Label(), len(shows))
				printShows(out, capShows(shows, limit))
				fmt.Fprintln(out)
			}
			return nil
		}

		category := catalog.CategoryTrending
		if len(args) == 1 {
			c, err := catalog.ParseCategory(args[0])
			if err != nil {
				return err
			}
			category = c
		}

		shows, err := a.catalog.Discover(ctx, category)
		if err != nil {
			return err
		}
		shows = capShows(shows, limit)
		if jsonOutput {
			return printJSON(out, shows)
		}
		if len(shows) == 0 {
			fmt.Fprintf(out, "No shows in %s\n", category.Label())
			return nil
		}
		fmt.Fprintf(out, "%s (%d):\n\n", category.Label(), len(shows))
		printShows(out, shows)
		return nil
	})
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	lookup, _ := cmd.Flags().GetBool("lookup")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		var (
			shows []catalog.Show
			err   error
		)
		if lookup {
			shows, err = a.catalog.SearchLibrary(ctx, query)
		} else {
			shows, err = a.catalog.SearchDiscovery(ctx, query)
		}
		if err != nil {
			return err
		}
		shows = capShows(shows, limit)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, shows)
		}
		if len(shows) == 0 {
			fmt.Fprintf(out, "No results for %q\n", query)
			return nil
		}
		fmt.Fprintf(out, "Results for %q (%d):\n\n", query, len(shows))
		printShows(out, shows)
		return nil
	})
}

func capShows(shows []catalog.Show, limit int) []catalog.Show {
	if limit > 0 && len(shows) > limit {
		return shows[:limit]
	}
	return shows
}

func printShows(w io.Writer, shows []catalog.Show) {
	fmt.Fprintf(w, "  %-8s %-8s %-40s %-4s %s\n", "ID", "TVDB", "NAME", "YEAR", "VOTE")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 70))
	for _, s := range shows {
		year := "-"
		if s.Year > 0 {
			year = fmt.Sprint(s.Year)
		}
		tvdb := "-"
		if id, ok := s.TVDBID.Get(); ok {
			tvdb = fmt.Sprint(id)
		}
		fmt.Fprintf(w, "  %-8d %-8s %-40s %-4s %s\n", s.ID, tvdb, truncate(s.Name, 40), year, formatVote(s.VoteAverage))
	}
}
