package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/catalog"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the download queue",
	Args:  cobra.NoArgs,
	RunE:  runQueueCmd,
}

var queueCancelCmd = &cobra.Command{
	Use:   "cancel <queue-id>",
	Short: "Remove an item from the download queue",
	Args:  cobra.ExactArgs(1),
	RunE:  runQueueCancelCmd,
}

var indexersCmd = &cobra.Command{
	Use:   "indexers",
	Short: "Check that an enabled search indexer exists",
	Args:  cobra.NoArgs,
	RunE:  runIndexersCmd,
}

func init() {
	rootCmd.AddCommand(queueCmd)
	queueCmd.AddCommand(queueCancelCmd)
	rootCmd.AddCommand(indexersCmd)
}

func runQueueCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		items, err := a.catalog.Queue(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, items)
		}
		printQueue(out, items)
		return nil
	})
}

func printQueue(w io.Writer, items []catalog.DownloadItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No downloads in queue")
		return
	}

	fmt.Fprintf(w, "Downloads (%d):\n\n", len(items))
	fmt.Fprintf(w, "  %-6s │ %-40s │ %-12s │ %-8s │ %-6s │ %s\n", "ID", "TITLE", "STATUS", "QUALITY", "DONE", "LEFT")
	fmt.Fprintln(w, "  ───────┼──────────────────────────────────────────┼──────────────┼──────────┼────────┼──────")
	for _, d := range items {
		left := d.TimeLeft
		if left == "" {
			left = "-"
		}
		fmt.Fprintf(w, "  %-6d │ %-40s │ %-12s │ %-8s │ %5.1f%% │ %s\n",
			d.ID, truncate(d.Title, 40), d.Status, d.Quality.Name, d.Progress()*100, left)
	}
}

func runQueueCancelCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "queue id")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		// Load the queue first so the activity entry names the release.
		if _, err := a.catalog.Queue(ctx); err != nil {
			return err
		}
		if err := a.catalog.CancelDownload(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d from the queue\n", id)
		return nil
	})
}

func runIndexersCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		has, err := a.catalog.HasUsableIndexer(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, map[string]bool{"hasUsableIndexer": has})
		}
		if has {
			fmt.Fprintln(out, "An indexer is enabled for episode searches")
		} else {
			fmt.Fprintln(out, "No indexer is enabled for automatic or interactive search")
		}
		return nil
	})
}
