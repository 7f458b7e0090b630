package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// ConversionService converts between trees and markdown.
type ConversionService struct {
	codec driven.MarkdownCodec
}

// NewConversionService creates a new conversion service.
func NewConversionService(codec driven.MarkdownCodec) *ConversionService {
	return &ConversionService{codec: codec}
}

// Import parses markdown into a fresh tree.
func (s *ConversionService) Import(ctx context.Context, markdown string) (*domain.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.codec.Import(markdown)
}

// Export serialises a tree to markdown.
func (s *ConversionService) Export(ctx context.Context, tree *domain.Tree) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if tree == nil {
		return "", fmt.Errorf("export: %w", domain.ErrInvalidInput)
	}
	return s.codec.Export(tree)
}

// RoundTrip imports then exports markdown.
func (s *ConversionService) RoundTrip(ctx context.Context, markdown string) (string, error) {
	tree, err := s.Import(ctx, markdown)
	if err != nil {
		return "", err
	}
	return s.Export(ctx, tree)
}
