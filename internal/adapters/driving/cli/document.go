package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage stored documents",
	Long:  `Create, import, list, view, and delete stored documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentCreateCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Store markdown from a file or stdin as a new document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDocumentCreate,
}

var documentImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import a markdown file, updating the document for that path",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentImport,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

var exportCmd = &cobra.Command{
	Use:   "export [doc-id]",
	Short: "Print the markdown of a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var pasteCmd = &cobra.Command{
	Use:   "paste [doc-id] [file]",
	Short: "Paste text into the end of a stored document",
	Long: `Paste text from a file or stdin at the end of a stored document.

Markdown is imported as blocks, anything else becomes plain paragraphs.
Use --html to pass the companion rich payload a clipboard would carry.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPaste,
}

var appendCmd = &cobra.Command{
	Use:   "append [doc-id] [line]",
	Short: "Type one line at the end of a document",
	Long: `Append one line to a stored document as if it were typed, so that
shortcuts such as "## ", "- " and "---" become blocks.`,
	Args: cobra.ExactArgs(2),
	RunE: runAppend,
}

var (
	// createTitle is the title flag for document create.
	createTitle string

	// pasteHTML is the companion payload file for paste.
	pasteHTML string
)

func init() {
	documentCreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Document title (default: first heading)")
	pasteCmd.Flags().StringVar(&pasteHTML, "html", "", "File holding the companion HTML payload")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentCreateCmd)
	documentCmd.AddCommand(documentImportCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(appendCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if docs[i].URI != "" {
			cmd.Printf("    URI: %s\n", docs[i].URI)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	printDocument(cmd, doc)
	return nil
}

func runDocumentCreate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	markdown, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	doc, err := documentService.Create(cmd.Context(), createTitle, markdown)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	cmd.Printf("Created document %s (%s)\n", doc.ID, doc.Title)
	return nil
}

func runDocumentImport(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.ImportFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to import document: %w", err)
	}

	cmd.Printf("Imported document %s (%s)\n", doc.ID, doc.Title)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	markdown, err := documentService.Export(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}

	cmd.Println(markdown)
	return nil
}

func runPaste(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	text, err := readInput(cmd, args[1:])
	if err != nil {
		return err
	}
	html, err := readOptionalFile(pasteHTML)
	if err != nil {
		return err
	}

	result, err := documentService.Paste(cmd.Context(), args[0], domain.PasteEvent{Text: text, HTML: html})
	if err != nil {
		return fmt.Errorf("failed to paste: %w", err)
	}

	cmd.Printf("Pasted %d blocks as %s into %s\n", len(result.Inserted), result.Mode, args[0])
	return nil
}

func runAppend(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.AppendLine(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to append line: %w", err)
	}

	cmd.Println(doc.Markdown)
	return nil
}

func printDocument(cmd *cobra.Command, doc *domain.Document) {
	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	if doc.URI != "" {
		cmd.Printf("  URI:      %s\n", doc.URI)
	}
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(doc.Metadata) > 0 {
		cmd.Println("\n  Metadata:")
		for k, v := range doc.Metadata {
			cmd.Printf("    %s: %v\n", k, v)
		}
	}
}
