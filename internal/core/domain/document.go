package domain

import "time"

// Document is a stored document. Its persisted form is the exported
// markdown; the tree is rebuilt from it on demand.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title.
	Title string

	// URI is the original location (file path, URL, etc), if any.
	URI string

	// Markdown is the exported text of the document tree.
	Markdown string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time
}
