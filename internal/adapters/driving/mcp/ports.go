package mcp

import (
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Conversion imports and exports markdown.
	Conversion driving.ConversionService

	// Paste classifies and inserts pasted content.
	Paste driving.PasteService

	// Document manages stored documents. Optional; document tools and
	// resources report an error without it.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	if p.Paste == nil {
		return ErrMissingPasteService
	}
	return nil
}
