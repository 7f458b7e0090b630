package driven

import "github.com/custodia-labs/marktext/internal/core/domain"

// MarkdownCodec converts between document trees and markdown text.
// The transformers engine is the implementation; the two directions share
// one rule registry.
type MarkdownCodec interface {
	// Import parses markdown into a fresh tree.
	Import(markdown string) (*domain.Tree, error)

	// ImportAt parses markdown into tree in place, inserting the new blocks
	// under parent starting at index. Rules may reach the siblings before
	// the insertion point. Returns the top-level blocks that remain.
	ImportAt(tree *domain.Tree, parent domain.NodeID, index int, markdown string) ([]domain.NodeID, error)

	// ImportLine applies block and inline rules to one paragraph, as
	// when the user finishes typing a line (interactive) or in bulk.
	ImportLine(tree *domain.Tree, paragraph domain.NodeID, interactive bool) (bool, error)

	// Export serialises the whole tree.
	Export(tree *domain.Tree) (string, error)
}

// PasteClassifier decides whether pasted plain text should be imported as
// markup. It is a pure predicate.
type PasteClassifier interface {
	IsLikelyMarkdown(text, companionHTML string) bool
}

// HTMLConverter turns a rich clipboard payload into markdown.
type HTMLConverter interface {
	ToMarkdown(html string) (string, error)
}

// EmojiTable maps short alias names to glyphs.
type EmojiTable interface {
	// Lookup returns the glyph for alias, without colons.
	Lookup(alias string) (string, bool)
}
