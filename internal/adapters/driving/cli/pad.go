package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marktext/internal/adapters/driving/tui"
)

var padCmd = &cobra.Command{
	Use:   "pad",
	Short: "Open the interactive paste pad",
	Long: `Open a terminal pad for trying out pastes.

Type or paste text on the left. The right pane shows whether the text is
likely markdown and the normalised markdown a paste would produce.

Controls:
  ctrl+r   - Analyse the pad
  ctrl+s   - Save the preview as a document
  ctrl+l   - Clear
  tab      - Switch between pad and preview
  f1       - Toggle help
  ctrl+q   - Quit`,
	Args: cobra.NoArgs,
	RunE: runPad,
}

func init() {
	rootCmd.AddCommand(padCmd)
}

func runPad(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in pad: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("pad crashed: %v", r)
		}
	}()

	ports := tui.NewPorts(pasteService, conversionService)
	ports.Document = documentService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create pad: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("pad error: %w", err)
	}
	return nil
}
