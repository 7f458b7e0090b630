package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync [dir]",
	Short: "Import every markdown file in a folder",
	Long: `Imports every visible .md and .markdown file under a folder into the
document store. Files imported before are updated in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Keep a folder in sync until interrupted",
	Long: `Syncs a folder once, then re-imports markdown files as they are
created or changed and deletes the documents of removed files.
Press ctrl+c to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(watchCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	if syncService == nil || openSource == nil {
		return errors.New("sync service not configured")
	}

	source, err := openSource(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer source.Close()

	cmd.Printf("Synchronising %s...\n", args[0])
	count, err := syncService.Sync(cmd.Context(), source)
	cmd.Printf("Imported %d files\n", count)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	if syncService == nil || openSource == nil {
		return errors.New("sync service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := openSource(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer source.Close()

	count, err := syncService.Sync(ctx, source)
	if err != nil {
		cmd.PrintErrf("Initial sync: %v\n", err)
	}
	cmd.Printf("Imported %d files, watching %s (ctrl+c to stop)\n", count, args[0])

	return syncService.Watch(ctx, source, func(change domain.FileChange, err error) {
		if err != nil {
			cmd.PrintErrf("%s %s: %v\n", change.Type, change.File.Path, err)
			return
		}
		cmd.Printf("%s %s\n", change.Type, change.File.Path)
	})
}
