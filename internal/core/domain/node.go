package domain

// NodeID addresses a node inside a Tree arena.
type NodeID int

// NoNode is the zero reference: no parent, no sibling, no selection.
const NoNode NodeID = -1

// RootID is the root node of every Tree.
const RootID NodeID = 0

// Kind identifies the variant of a document node.
type Kind int

// Block kinds occupy their own line(s); inline kinds live inside a block.
const (
	KindRoot Kind = iota
	KindParagraph
	KindHeading
	KindQuote
	KindList
	KindListItem
	KindCodeBlock
	KindTable
	KindTableRow
	KindTableCell
	KindHorizontalRule
	KindImage
	KindEmbed

	KindText
	KindLineBreak
	KindLink
	KindInlineImage
	KindEquation
)

var kindNames = map[Kind]string{
	KindRoot:           "root",
	KindParagraph:      "paragraph",
	KindHeading:        "heading",
	KindQuote:          "quote",
	KindList:           "list",
	KindListItem:       "listitem",
	KindCodeBlock:      "code",
	KindTable:          "table",
	KindTableRow:       "tablerow",
	KindTableCell:      "tablecell",
	KindHorizontalRule: "horizontalrule",
	KindImage:          "image",
	KindEmbed:          "embed",
	KindText:           "text",
	KindLineBreak:      "linebreak",
	KindLink:           "link",
	KindInlineImage:    "inlineimage",
	KindEquation:       "equation",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsInline reports whether the kind is an inline run.
func (k Kind) IsInline() bool {
	return k >= KindText
}

// HoldsInlines reports whether a block of this kind carries inline runs
// directly as children.
func (k Kind) HoldsInlines() bool {
	switch k {
	case KindParagraph, KindHeading, KindQuote, KindListItem, KindLink:
		return true
	default:
		return false
	}
}

// Format is the bit-set of text formatting flags on a text run.
type Format uint8

// Formatting flags. They are orthogonal to node kind.
const (
	FormatBold Format = 1 << iota
	FormatItalic
	FormatStrikethrough
	FormatCode
	FormatHighlight
	FormatUnderline
)

// Has reports whether every bit of flag is set.
func (f Format) Has(flag Format) bool {
	return f&flag == flag
}

// ListType distinguishes the three list flavours.
type ListType int

// Available list types.
const (
	ListBullet ListType = iota
	ListNumber
	ListCheck
)

// String returns the string representation.
func (t ListType) String() string {
	switch t {
	case ListBullet:
		return "bullet"
	case ListNumber:
		return "number"
	case ListCheck:
		return "check"
	default:
		return unknownName
	}
}

const unknownName = "unknown"

// Node is one entry in the Tree arena. Which fields are meaningful depends
// on Kind.
type Node struct {
	ID       NodeID
	Kind     Kind
	Parent   NodeID
	Children []NodeID

	// Text is the content of a text run or the body of a code block.
	Text   string
	Format Format

	// Level is the heading level, 1-6.
	Level int

	ListType ListType
	// Start is the first ordinal of a numbered list.
	Start   int
	Checked bool

	// Header marks a table cell as header-styled.
	Header bool

	Language string
	URL      string

	Alt string
	Src string

	// Expression is the raw equation source, stored verbatim.
	Expression string

	EmbedKind string
	EmbedID   string
}
