package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/catalog"
	"github.com/vmunix/sonarrplus/internal/settings"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List the series in the Sonarr library",
	Long: `List every series in the Sonarr library, sorted by name.

--filter ranks the library by fuzzy title match instead.

Examples:
  sonarrplus library
  sonarrplus library --filter "breaking bad"`,
	Args: cobra.NoArgs,
	RunE: runLibraryCmd,
}

var showCmd = &cobra.Command{
	Use:   "show <series-id>",
	Short: "Show one library series with its seasons",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowCmd,
}

var addCmd = &cobra.Command{
	Use:   "add <title | tvdb:<id>>",
	Short: "Add a series to the Sonarr library",
	Long: `Add a series to Sonarr.

The series is found through Sonarr's lookup, by title or "tvdb:<id>".
--watchlist adds a watchlist show by its TMDB id instead; its TVDB id is
resolved by title when unknown. The default root folder and the first
quality profile are used unless overridden.

Examples:
  sonarrplus add "Breaking Bad"
  sonarrplus add tvdb:81189 --profile 4 --search
  sonarrplus add --watchlist 1396`,
	Args: cobra.ArbitraryArgs,
	RunE: runAddCmd,
}

var rootFoldersCmd = &cobra.Command{
	Use:   "rootfolders",
	Short: "List library root folders",
	Args:  cobra.NoArgs,
	RunE:  runRootFoldersCmd,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List quality profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfilesCmd,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Change season or episode monitoring",
}

var monitorSeasonCmd = &cobra.Command{
	Use:   "season <series-id> <season>",
	Short: "Monitor (or with --off, unmonitor) one season",
	Args:  cobra.ExactArgs(2),
	RunE:  runMonitorSeasonCmd,
}

var urlCmd = &cobra.Command{
	Use:   "url <tvdb-id>",
	Short: "Print the Sonarr web page of a series",
	Args:  cobra.ExactArgs(1),
	RunE:  runURLCmd,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.Flags().StringP("filter", "f", "", "Fuzzy title filter")

	rootCmd.AddCommand(showCmd)

	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Int("profile", 0, "Quality profile id (default: first profile)")
	addCmd.Flags().String("root", "", "Root folder (default: first root folder)")
	addCmd.Flags().Bool("search", false, "Search for missing episodes after adding")
	addCmd.Flags().Int64("watchlist", 0, "Add the watchlist show with this TMDB id")

	rootCmd.AddCommand(rootFoldersCmd)
	rootCmd.AddCommand(profilesCmd)

	rootCmd.AddCommand(monitorCmd)
	monitorCmd.AddCommand(monitorSeasonCmd)
	monitorSeasonCmd.Flags().Bool("off", false, "Unmonitor instead")

	rootCmd.AddCommand(urlCmd)
}

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return id, nil
}

func runLibraryCmd(cmd *cobra.Command, args []string) error {
	filter, _ := cmd.Flags().GetString("filter")
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		shows, err := a.catalog.Library(ctx)
		if err != nil {
			return err
		}
		shows = catalog.FilterLibrary(shows, filter)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, shows)
		}
		if len(shows) == 0 {
			fmt.Fprintln(out, "No series")
			return nil
		}
		fmt.Fprintf(out, "Library (%d):\n\n", len(shows))
		printLibrary(out, shows)
		return nil
	})
}

func printLibrary(w io.Writer, shows []catalog.Show) {
	fmt.Fprintf(w, "  %-6s %-40s %-10s %-9s %-7s %s\n", "ID", "TITLE", "STATUS", "MONITORED", "SEASONS", "NOTIFY")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 86))
	for _, s := range shows {
		monitored := false
		if s.Monitored != nil {
			monitored = *s.Monitored
		}
		fmt.Fprintf(w, "  %-6d %-40s %-10s %-9s %-7d %s\n",
			s.ID, truncate(s.Name, 40), s.Status, yesNo(monitored), len(s.Seasons), yesNo(s.NotificationsEnabled))
	}
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "series id")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		show, err := a.catalog.Show(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, show)
		}
		printShowDetail(out, *show)
		if url, err := a.catalog.SeriesWebURL(show.TVDBID); err == nil {
			fmt.Fprintf(out, "Web:       %s\n", url)
		}
		return nil
	})
}

func printShowDetail(w io.Writer, s catalog.Show) {
	fmt.Fprintf(w, "%s", s.Name)
	if s.Year > 0 {
		fmt.Fprintf(w, " (%d)", s.Year)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "ID:        %d\n", s.ID)
	fmt.Fprintf(w, "TVDB:      %s\n", s.TVDBID)
	if s.Network != "" {
		fmt.Fprintf(w, "Network:   %s\n", s.Network)
	}
	if s.Status != "" {
		fmt.Fprintf(w, "Status:    %s\n", s.Status)
	}
	if s.Path != "" {
		fmt.Fprintf(w, "Path:      %s\n", s.Path)
	}
	fmt.Fprintf(w, "Rating:    %s\n", formatVote(s.VoteAverage))
	fmt.Fprintf(w, "Notify:    %s\n", yesNo(s.NotificationsEnabled))
	if s.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", s.Overview)
	}

	if len(s.Seasons) == 0 {
		return
	}
	fmt.Fprintf(w, "\n  %-7s %-9s %-9s %s\n", "SEASON", "MONITORED", "EPISODES", "SIZE")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 40))
	for _, se := range s.Seasons {
		episodes, size := "-", "-"
		if st := se.Statistics; st != nil {
			episodes = fmt.Sprintf("%d/%d", st.EpisodeFileCount, st.EpisodeCount)
			size = formatSize(st.SizeOnDisk)
		}
		fmt.Fprintf(w, "  %-7d %-9s %-9s %s\n", se.Number, yesNo(se.Monitored), episodes, size)
	}
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	profile, _ := cmd.Flags().GetInt("profile")
	root, _ := cmd.Flags().GetString("root")
	search, _ := cmd.Flags().GetBool("search")
	fromWatchlist, _ := cmd.Flags().GetInt64("watchlist")
	term := strings.TrimSpace(strings.Join(args, " "))
	if term == "" && fromWatchlist == 0 {
		return fmt.Errorf("add needs a title, tvdb:<id> or --watchlist <tmdb-id>")
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		var show catalog.Show
		if fromWatchlist != 0 {
			list, err := a.catalog.Watchlist(ctx)
			if err != nil {
				return err
			}
			i := slices.IndexFunc(list, func(s catalog.Show) bool { return s.ID == fromWatchlist })
			if i < 0 {
				return fmt.Errorf("show %d: %w on the watchlist", fromWatchlist, settings.ErrNotFound)
			}
			show = list[i]
		} else {
			results, err := a.catalog.SearchLibrary(ctx, term)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("no series found for %q", term)
			}
			show = results[0]
		}
		show.RootFolderPath = root

		added, err := a.catalog.AddToLibrary(ctx, show, profile, search)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, added)
		}
		fmt.Fprintf(out, "Added %s (id %d) at %s\n", added.Name, added.ID, added.Path)
		if search {
			fmt.Fprintln(out, "Search for missing episodes started")
		}
		return nil
	})
}

func runRootFoldersCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		paths, err := a.catalog.RootFolders(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, paths)
		}
		if len(paths) == 0 {
			fmt.Fprintln(out, "No root folders configured")
			return nil
		}
		for i, p := range paths {
			marker := " "
			if i == 0 {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, p)
		}
		return nil
	})
}

func runProfilesCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		profiles, err := a.catalog.QualityProfiles(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, profiles)
		}
		if len(profiles) == 0 {
			fmt.Fprintln(out, "No quality profiles configured")
			return nil
		}

		fmt.Fprintf(out, "Quality Profiles (%d):\n\n", len(profiles))
		fmt.Fprintf(out, "  %-4s %s\n", "ID", "NAME")
		fmt.Fprintln(out, "  "+strings.Repeat("-", 30))
		for _, p := range profiles {
			fmt.Fprintf(out, "  %-4d %s\n", p.ID, p.Name)
		}
		return nil
	})
}

func runMonitorSeasonCmd(cmd *cobra.Command, args []string) error {
	off, _ := cmd.Flags().GetBool("off")
	seriesID, err := parseID(args[0], "series id")
	if err != nil {
		return err
	}
	season, err := strconv.Atoi(args[1])
	if err != nil || season < 0 {
		return fmt.Errorf("invalid season %q", args[1])
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		if err := a.catalog.SetSeasonMonitored(ctx, seriesID, season, !off); err != nil {
			return err
		}
		verb := "Monitoring"
		if off {
			verb = "Stopped monitoring"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s season %d of series %d\n", verb, season, seriesID)
		return nil
	})
}

func runURLCmd(cmd *cobra.Command, args []string) error {
	tvdb, err := parseID(args[0], "tvdb id")
	if err != nil {
		return err
	}
	return withApp(cmd.Context(), func(a *app) error {
		url, err := a.catalog.SeriesWebURL(catalog.Identified(tvdb))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	})
}
