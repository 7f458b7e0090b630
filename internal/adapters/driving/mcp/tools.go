package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// ClassifyInput is the input schema for the classify_paste tool.
type ClassifyInput struct {
	Text string `json:"text" jsonschema:"the pasted plain text"`
	HTML string `json:"html,omitempty" jsonschema:"the companion rich payload, if the clipboard had one"`
}

// ClassifyOutput is the output schema for the classify_paste tool.
type ClassifyOutput struct {
	Markdown bool `json:"markdown"`
}

// ConvertInput is the input schema for the convert_markdown tool.
type ConvertInput struct {
	Markdown string `json:"markdown" jsonschema:"markdown text to normalise"`
	Outline  bool   `json:"outline,omitempty" jsonschema:"also return the document tree"`
}

// ConvertOutput is the output schema for the convert_markdown tool.
// Outline holds a *domain.OutlineNode; it is typed loosely because the
// tree is recursive.
type ConvertOutput struct {
	Markdown string `json:"markdown"`
	Outline  any    `json:"outline,omitempty"`
}

// DocumentInput identifies a stored document.
type DocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the stored document ID"`
}

// DocumentOutput is the output schema for export_document.
type DocumentOutput struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Markdown   string `json:"markdown"`
}

// PasteInput is the input schema for the paste_into_document tool.
type PasteInput struct {
	DocumentID string `json:"document_id" jsonschema:"the stored document ID"`
	Text       string `json:"text" jsonschema:"the pasted plain text"`
	HTML       string `json:"html,omitempty" jsonschema:"the companion rich payload, if any"`
}

// PasteOutput is the output schema for the paste_into_document tool.
type PasteOutput struct {
	Mode     string `json:"mode"`
	Inserted int    `json:"inserted"`
	Markdown string `json:"markdown"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_paste",
		Description: "Decide whether pasted plain text is markdown",
	}, s.handleClassify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_markdown",
		Description: "Normalise markdown by importing and re-exporting it",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_document",
		Description: "Return the markdown of a stored document",
	}, s.handleExportDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "paste_into_document",
		Description: "Paste text at the end of a stored document",
	}, s.handlePasteIntoDocument)
}

func (s *Server) handleClassify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	event := domain.PasteEvent{Text: input.Text, HTML: input.HTML}
	return nil, ClassifyOutput{Markdown: s.ports.Paste.Classify(ctx, event)}, nil
}

func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	tree, err := s.ports.Conversion.Import(ctx, input.Markdown)
	if err != nil {
		return nil, ConvertOutput{}, err
	}
	out, err := s.ports.Conversion.Export(ctx, tree)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	output := ConvertOutput{Markdown: out}
	if input.Outline {
		outline := tree.Outline(tree.Root())
		output.Outline = &outline
	}
	return nil, output, nil
}

func (s *Server) handleExportDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	if s.ports.Document == nil {
		return nil, DocumentOutput{}, ErrNoDocuments
	}
	doc, err := s.ports.Document.Get(ctx, input.DocumentID)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	md, err := s.ports.Document.Export(ctx, input.DocumentID)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, DocumentOutput{DocumentID: doc.ID, Title: doc.Title, Markdown: md}, nil
}

func (s *Server) handlePasteIntoDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PasteInput,
) (*mcp.CallToolResult, PasteOutput, error) {
	if s.ports.Document == nil {
		return nil, PasteOutput{}, ErrNoDocuments
	}
	result, err := s.ports.Document.Paste(ctx, input.DocumentID, domain.PasteEvent{Text: input.Text, HTML: input.HTML})
	if err != nil {
		return nil, PasteOutput{}, err
	}
	md, err := s.ports.Document.Export(ctx, input.DocumentID)
	if err != nil {
		return nil, PasteOutput{}, err
	}
	return nil, PasteOutput{
		Mode:     string(result.Mode),
		Inserted: len(result.Inserted),
		Markdown: md,
	}, nil
}
