package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/settings"
)

var connectCmd = &cobra.Command{
	Use:   "connect <url> <api-key>",
	Short: "Connect to a Sonarr server",
	Long: `Probe a Sonarr server with an API key and save the session.

The key is checked against /api/v3/system/status; only a 200 response
counts. On success the URL and key are stored in the settings database
and used by every later command.

Examples:
  sonarrplus connect http://nas.local:8989 0123456789abcdef
  sonarrplus connect https://sonarr.example.com/ $SONARR_API_KEY`,
	Args: cobra.ExactArgs(2),
	RunE: runConnectCmd,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the saved Sonarr session",
	Args:  cobra.NoArgs,
	RunE:  runDisconnectCmd,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection status",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
	rootCmd.AddCommand(statusCmd)
}

func runConnectCmd(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(a *app) error {
		status, err := a.catalog.Authenticate(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, status)
		}
		fmt.Fprintf(out, "Connected to %s %s (%s)\n", status.AppName, status.Version, args[0])
		return nil
	})
}

func runDisconnectCmd(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(a *app) error {
		if err := a.catalog.Disconnect(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Disconnected")
		return nil
	})
}

type statusResponse struct {
	Connected  bool   `json:"connected"`
	Server     string `json:"server,omitempty"`
	Source     string `json:"source,omitempty"` // "saved" or "config"
	HasIndexer *bool  `json:"hasIndexer,omitempty"`
	Series     *int   `json:"series,omitempty"`
	Discovery  bool   `json:"discoveryConfigured"`
	Error      string `json:"error,omitempty"`
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		resp := statusResponse{
			Connected: a.catalog.Connected(),
			Discovery: a.cfg.TMDB.APIKey != "",
		}

		creds, err := a.store.Credentials(ctx)
		switch {
		case err == nil:
			resp.Server, resp.Source = creds.BaseURL, "saved"
		case errors.Is(err, settings.ErrNotFound):
			if resp.Connected {
				resp.Server, resp.Source = a.cfg.Sonarr.URL, "config"
			}
		default:
			return err
		}

		if resp.Connected {
			if has, err := a.catalog.HasUsableIndexer(ctx); err != nil {
				resp.Error = userMessage(err)
			} else {
				resp.HasIndexer = &has
				if shows, err := a.catalog.Library(ctx); err == nil {
					n := len(shows)
					resp.Series = &n
				}
			}
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, resp)
		}

		if !resp.Connected {
			fmt.Fprintf(out, "Sonarr:     %s\n", notConnectedMessage)
		} else {
			fmt.Fprintf(out, "Sonarr:     %s (%s)\n", resp.Server, resp.Source)
		}
		if resp.Error != "" {
			fmt.Fprintf(out, "            %s\n", resp.Error)
		}
		if resp.Series != nil {
			fmt.Fprintf(out, "Series:     %d\n", *resp.Series)
		}
		if resp.HasIndexer != nil {
			fmt.Fprintf(out, "Indexer:    %s\n", yesNo(*resp.HasIndexer))
		}
		fmt.Fprintf(out, "Discovery:  %s\n", configuredLabel(resp.Discovery))
		return nil
	})
}

func configuredLabel(ok bool) string {
	if ok {
		return "configured"
	}
	return "no TMDB api key"
}
