package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change classifier, paste, emoji, storage and sync settings.

Settings are stored in the config file in dot notation, for example
classifier.short_line_threshold.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting. Values are validated before they are stored.

Keys:
  classifier.short_line_threshold  positive integer
  classifier.allowed_tags          comma separated tag names
  paste.convert_html               true or false
  emoji.aliases_file               path to a TOML alias file
  storage.backend                  sqlite or memory
  storage.data_dir                 directory for the database
  sync.min_interval_ms             milliseconds between watch imports`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Classifier:")
	cmd.Printf("  Short line threshold: %d\n", settings.Classifier.ShortLineThreshold)
	if len(settings.Classifier.AllowedTags) > 0 {
		cmd.Printf("  Allowed tags:         %s\n", strings.Join(settings.Classifier.AllowedTags, ", "))
	} else {
		cmd.Println("  Allowed tags:         (built-in)")
	}

	cmd.Println("\nPaste:")
	cmd.Printf("  Convert HTML:         %t\n", settings.Paste.ConvertHTML)

	cmd.Println("\nEmoji:")
	if settings.Emoji.AliasesFile != "" {
		cmd.Printf("  Aliases file:         %s\n", settings.Emoji.AliasesFile)
	} else {
		cmd.Println("  Aliases file:         (none)")
	}

	cmd.Println("\nStorage:")
	cmd.Printf("  Backend:              %s\n", settings.Storage.Backend)
	if settings.Storage.DataDir != "" {
		cmd.Printf("  Data directory:       %s\n", settings.Storage.DataDir)
	}

	cmd.Println("\nSync:")
	cmd.Printf("  Minimum interval:     %s\n", settings.Sync.MinInterval)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}
