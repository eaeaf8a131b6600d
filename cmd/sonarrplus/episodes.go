package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/catalog"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes <series-id>",
	Short: "List the episodes of a library series",
	Long: `List episodes in season then episode order.

Examples:
  sonarrplus episodes 12
  sonarrplus episodes 12 --season 2`,
	Args: cobra.ExactArgs(1),
	RunE: runEpisodesCmd,
}

var episodeCmd = &cobra.Command{
	Use:   "episode",
	Short: "Act on a single episode",
}

var episodeSearchCmd = &cobra.Command{
	Use:   "search <episode-id>",
	Short: "Ask Sonarr to search for an episode",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodeSearchCmd,
}

var episodeDeleteFileCmd = &cobra.Command{
	Use:   "delete-file <episode-id>",
	Short: "Delete the file of an episode from disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodeDeleteFileCmd,
}

var monitorEpisodeCmd = &cobra.Command{
	Use:   "episode <episode-id>",
	Short: "Monitor (or with --off, unmonitor) one episode",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonitorEpisodeCmd,
}

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.Flags().IntP("season", "s", -1, "Only this season")

	rootCmd.AddCommand(episodeCmd)
	episodeCmd.AddCommand(episodeSearchCmd)
	episodeCmd.AddCommand(episodeDeleteFileCmd)
	episodeDeleteFileCmd.Flags().BoolP("yes", "y", false, "Don't ask for confirmation")

	monitorCmd.AddCommand(monitorEpisodeCmd)
	monitorEpisodeCmd.Flags().Bool("off", false, "Unmonitor instead")
}

func runEpisodesCmd(cmd *cobra.Command, args []string) error {
	seriesID, err := parseID(args[0], "series id")
	if err != nil {
		return err
	}
	var season *int
	if s, _ := cmd.Flags().GetInt("season"); s >= 0 {
		season = &s
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		show, err := a.catalog.Show(ctx, seriesID)
		if err != nil {
			return err
		}
		eps, err := a.catalog.Episodes(ctx, *show, season)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, eps)
		}
		if len(eps) == 0 {
			fmt.Fprintf(out, "No episodes for %s\n", show.Name)
			return nil
		}
		fmt.Fprintf(out, "%s (%d episodes):\n\n", show.Name, len(eps))
		printEpisodes(out, eps)
		return nil
	})
}

func printEpisodes(w io.Writer, eps []catalog.Episode) {
	fmt.Fprintf(w, "  %-8s %-7s %-40s %-10s %-9s %s\n", "ID", "CODE", "TITLE", "AIRED", "MONITORED", "FILE")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 86))
	for _, e := range eps {
		aired := e.AirDate
		if aired == "" {
			aired = "-"
		}
		fmt.Fprintf(w, "  %-8d %-7s %-40s %-10s %-9s %s\n",
			e.ID, e.Code(), truncate(e.Title, 40), aired, yesNo(e.Monitored), yesNo(e.HasFile))
	}
}

func runEpisodeSearchCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "episode id")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		if has, err := a.catalog.HasUsableIndexer(ctx); err == nil && !has {
			a.log.Warn("no enabled indexer, the search will find nothing")
		}
		command, err := a.catalog.SearchEpisode(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, command)
		}
		fmt.Fprintf(out, "Search queued (command %d, %s)\n", command.ID, command.Status)
		return nil
	})
}

func runEpisodeDeleteFileCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "episode id")
	if err != nil {
		return err
	}
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !confirm(cmd, fmt.Sprintf("Delete the file of episode %d from disk?", id)) {
		return fmt.Errorf("aborted")
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		if err := a.catalog.DeleteEpisodeFile(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted file of episode %d\n", id)
		return nil
	})
}

func runMonitorEpisodeCmd(cmd *cobra.Command, args []string) error {
	off, _ := cmd.Flags().GetBool("off")
	id, err := parseID(args[0], "episode id")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		if err := a.catalog.SetEpisodeMonitored(ctx, id, !off); err != nil {
			return err
		}
		verb := "Monitoring"
		if off {
			verb = "Stopped monitoring"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s episode %d\n", verb, id)
		return nil
	})
}
