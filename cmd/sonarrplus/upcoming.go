package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// now is the clock the time-relative commands read; tests pin it.
var now = time.Now

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List episodes airing soon for shows with notifications on",
	Long: `List episodes of notification-enabled shows that air within the
reminder window (default from [notifications] window, 24h).

Examples:
  sonarrplus upcoming
  sonarrplus upcoming --window 72h`,
	Args: cobra.NoArgs,
	RunE: runUpcomingCmd,
}

var notifyCmd = &cobra.Command{
	Use:   "notify <series-id>",
	Short: "Turn episode reminders on (or with --off, off) for a series",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotifyCmd,
}

func init() {
	rootCmd.AddCommand(upcomingCmd)
	upcomingCmd.Flags().Duration("window", 0, "How far ahead to look (default: config)")

	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().Bool("off", false, "Turn reminders off")
}

func runUpcomingCmd(cmd *cobra.Command, args []string) error {
	window, _ := cmd.Flags().GetDuration("window")
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		if window <= 0 {
			window = a.cfg.Notifications.Window
		}
		t := now()
		reminders, err := a.catalog.Upcoming(ctx, t, window)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, reminders)
		}
		if len(reminders) == 0 {
			fmt.Fprintf(out, "Nothing airing in the next %s\n", window)
			return nil
		}

		fmt.Fprintf(out, "Upcoming (%d):\n\n", len(reminders))
		fmt.Fprintf(out, "  %-9s %-30s %-7s %s\n", "WHEN", "SHOW", "CODE", "TITLE")
		fmt.Fprintln(out, "  "+strings.Repeat("-", 70))
		for _, r := range reminders {
			fmt.Fprintf(out, "  %-9s %-30s %-7s %s\n",
				formatUntil(r.AirsAt, t), truncate(r.ShowTitle, 30), r.Episode.Code(), r.Episode.Title)
		}
		return nil
	})
}

func runNotifyCmd(cmd *cobra.Command, args []string) error {
	off, _ := cmd.Flags().GetBool("off")
	id, err := parseID(args[0], "series id")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		if err := a.catalog.SetNotifications(ctx, id, !off); err != nil {
			return err
		}
		state := "on"
		if off {
			state = "off"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reminders %s for series %d\n", state, id)
		return nil
	})
}
