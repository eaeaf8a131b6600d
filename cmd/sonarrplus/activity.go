package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/events"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent activity",
	Long: `Show what sonarrplus changed recently: connections, added series,
monitoring changes, rolled back changes, queue removals and watchlist
edits.

Examples:
  sonarrplus activity
  sonarrplus activity -n 50
  sonarrplus activity --prune 720h`,
	Args: cobra.NoArgs,
	RunE: runActivityCmd,
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
	activityCmd.Flags().Duration("prune", 0, "Delete entries older than this first")
}

type activityEntry struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Entity      string    `json:"entity"`
	EntityID    int64     `json:"entityId"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func runActivityCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	prune, _ := cmd.Flags().GetDuration("prune")
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		if prune > 0 {
			n, err := a.events.Prune(ctx, prune)
			if err != nil {
				return err
			}
			a.log.Info("pruned activity", "deleted", n)
		}

		raws, err := a.events.Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("failed to read activity: %w", err)
		}

		registry := events.DefaultRegistry()
		entries := make([]activityEntry, 0, len(raws))
		for _, r := range raws {
			entries = append(entries, activityEntry{
				ID:          r.ID,
				Type:        r.EventType,
				Entity:      r.EntityType,
				EntityID:    r.EntityID,
				Description: registry.Describe(r),
				OccurredAt:  r.OccurredAt,
			})
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, entries)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No activity")
			return nil
		}

		fmt.Fprintf(out, "Recent Activity (%d):\n\n", len(entries))
		fmt.Fprintf(out, "  %-10s %-28s %s\n", "TIME", "TYPE", "DESCRIPTION")
		fmt.Fprintln(out, "  "+strings.Repeat("-", 70))
		t := now()
		for _, e := range entries {
			fmt.Fprintf(out, "  %-10s %-28s %s\n", formatTimeAgo(e.OccurredAt, t), e.Type, e.Description)
		}
		return nil
	})
}
