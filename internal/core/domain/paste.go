package domain

// PasteEvent is what the host input layer delivers on paste.
type PasteEvent struct {
	// Text is the candidate plain text.
	Text string

	// HTML is the optional companion rich payload of the same clipboard
	// content. Empty when the clipboard held plain text only.
	HTML string
}

// PasteMode records which path a paste took.
type PasteMode string

// Paste paths.
const (
	// PasteMarkdown means the text was classified as markup and imported.
	PasteMarkdown PasteMode = "markdown"

	// PasteHTML means the companion payload was converted and imported.
	PasteHTML PasteMode = "html"

	// PastePlain means the text was inserted as plain prose.
	PastePlain PasteMode = "plain"
)

// PasteResult describes the outcome of a paste into a tree.
type PasteResult struct {
	// Mode is the path the paste took.
	Mode PasteMode

	// Inserted lists the top-level blocks added, in document order.
	Inserted []NodeID

	// Selection is the caret after insertion.
	Selection Selection
}
