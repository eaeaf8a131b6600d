package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/vmunix/sonarrplus/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long: `Write the default config file, to $XDG_CONFIG_HOME/sonarrplus/config.toml
unless a path is given. --interactive asks for the TMDB key and Sonarr
server and writes those values instead of environment references.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInitCmd,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (keys masked)",
	Args:  cobra.NoArgs,
	RunE:  runConfigShowCmd,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, field values and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTestCmd,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configTestCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configInitCmd.Flags().BoolP("interactive", "i", false, "Prompt for values")
}

func runConfigInitCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}

	if interactive {
		cfg, err := config.LoadWithoutValidation(path)
		if err != nil {
			return err
		}
		reader := bufio.NewReader(cmd.InOrStdin())
		cfg.TMDB.APIKey = promptWithDefault(cmd, reader, "TMDB API key", cfg.TMDB.APIKey)
		cfg.Sonarr.URL = promptWithDefault(cmd, reader, "Sonarr URL", cfg.Sonarr.URL)
		if cfg.Sonarr.URL != "" {
			cfg.Sonarr.APIKey = promptWithDefault(cmd, reader, "Sonarr API key", cfg.Sonarr.APIKey)
		}
		if errs := cfg.Validate(); len(errs) > 0 {
			printConfigErrors(cmd.OutOrStdout(), &config.ConfigError{Path: path, Errors: errs})
			return fmt.Errorf("configuration invalid")
		}
		if err := writeConfigFile(path, cfg); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// writeConfigFile writes cfg unmasked, readable only by the owner.
func writeConfigFile(path string, cfg *config.Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

func runConfigShowCmd(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(out, "# no config file found, showing defaults")
	} else {
		fmt.Fprintf(out, "# %s\n", path)
	}
	return cfg.Encode(out)
}

func runConfigTestCmd(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			printConfigErrors(out, cfgErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Log level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  Database:   %s\n", cfg.Database.Path)
	fmt.Fprintf(w, "  TMDB:       %s (%s, %g req/s)\n", configuredLabel(cfg.TMDB.APIKey != ""), cfg.TMDB.Language, cfg.TMDB.RateLimit)
	if cfg.Sonarr.URL != "" {
		fmt.Fprintf(w, "  Sonarr:     %s (timeout %s)\n", cfg.Sonarr.URL, cfg.Sonarr.Timeout)
	} else {
		fmt.Fprintln(w, "  Sonarr:     from saved session")
	}
	fmt.Fprintf(w, "  Reminders:  %s ahead\n", cfg.Notifications.Window)
}
