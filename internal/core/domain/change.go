package domain

// ChangeType represents the type of file change.
type ChangeType int

const (
	// ChangeCreated indicates a new file.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified file.
	ChangeUpdated

	// ChangeDeleted indicates a removed file.
	ChangeDeleted
)

// String returns the string representation.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return unknownName
	}
}

// SourceFile is a markdown file read by a connector.
type SourceFile struct {
	// Path is the absolute file path.
	Path string

	// Content is the raw file bytes. Empty for deletions.
	Content []byte
}

// FileChange represents a change event from a connector watch.
type FileChange struct {
	// Type is the kind of change.
	Type ChangeType

	// File is the affected file.
	File SourceFile
}
