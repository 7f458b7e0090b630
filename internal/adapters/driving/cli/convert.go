package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Print the document tree of markdown",
	Long: `Import markdown from a file or stdin and print the resulting document
tree as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [file]",
	Short: "Normalise markdown by importing and exporting it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoundtrip,
}

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Decide whether pasted text is markdown",
	Long: `Classify text from a file or stdin the way a paste would be classified.

Prints "markdown" when the text would be imported as markdown and "plain"
when it would be inserted as prose. Use --html to pass the companion rich
payload a clipboard would carry alongside the text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

// classifyHTML is the companion payload file for the classify command.
var classifyHTML string

func init() {
	classifyCmd.Flags().StringVar(&classifyHTML, "html", "", "File holding the companion HTML payload")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(classifyCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	markdown, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tree, err := conversionService.Import(cmd.Context(), markdown)
	if err != nil {
		return fmt.Errorf("failed to import markdown: %w", err)
	}

	out, err := json.MarshalIndent(tree.Outline(tree.Root()), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	markdown, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	normalised, err := conversionService.RoundTrip(cmd.Context(), markdown)
	if err != nil {
		return fmt.Errorf("failed to round-trip markdown: %w", err)
	}

	cmd.Println(normalised)
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	if pasteService == nil {
		return errors.New("paste service not configured")
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	html, err := readOptionalFile(classifyHTML)
	if err != nil {
		return err
	}

	if pasteService.Classify(cmd.Context(), domain.PasteEvent{Text: text, HTML: html}) {
		cmd.Println("markdown")
	} else {
		cmd.Println("plain")
	}
	return nil
}
