// Package cli provides the command-line interface for marktext.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
	"github.com/custodia-labs/marktext/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Services groups the driving ports the commands run against.
type Services struct {
	Conversion driving.ConversionService
	Paste      driving.PasteService
	Document   driving.DocumentService
	Sync       driving.SyncService
	Settings   driving.SettingsService

	// OpenSource opens the markdown source rooted at a directory.
	OpenSource func(dir string) (driven.MarkdownSource, error)
}

var (
	conversionService driving.ConversionService
	pasteService      driving.PasteService
	documentService   driving.DocumentService
	syncService       driving.SyncService
	settingsService   driving.SettingsService
	openSource        func(dir string) (driven.MarkdownSource, error)
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "marktext",
	Short: "Markdown paste classification and conversion",
	Long: `marktext converts between markdown and a structured document tree.

It decides whether pasted text is markdown, imports markdown into a tree
of blocks and inline runs, exports trees back to normalised markdown, and
keeps a store of documents that can be synced from a folder.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log rule firings and paste decisions")
}

// SetServices injects the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	conversionService = s.Conversion
	pasteService = s.Paste
	documentService = s.Document
	syncService = s.Sync
	settingsService = s.Settings
	openSource = s.OpenSource
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readInput returns the content of the file named by the first argument,
// or of stdin when there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no input: pass a file or pipe text on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// readOptionalFile returns the content of path, or "" when path is empty.
func readOptionalFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
