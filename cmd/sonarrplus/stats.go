package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the library and its disks",
	Args:  cobra.NoArgs,
	RunE:  runStatsCmd,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		st, err := a.catalog.Stats(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, st)
		}
		fmt.Fprintf(out, "Series:        %d (%d monitored, %d ended)\n", st.Series, st.Monitored, st.Ended)
		fmt.Fprintf(out, "Episode files: %d\n", st.EpisodeFiles)
		fmt.Fprintf(out, "Size on disk:  %.1f GiB\n", st.SizeOnDiskGiB)
		fmt.Fprintf(out, "Disks:         %d (%.1f GiB used of %.1f GiB, %.1f GiB free)\n",
			st.DiskCount, st.DiskUsedGiB, st.DiskTotalGiB, st.DiskFreeGiB)
		return nil
	})
}
