package domain

// OutlineNode is a serialisable view of a tree node, used by the CLI and
// the MCP tools to show what an import produced.
type OutlineNode struct {
	Kind       string        `json:"kind"`
	Text       string        `json:"text,omitempty"`
	Format     []string      `json:"format,omitempty"`
	Level      int           `json:"level,omitempty"`
	ListType   string        `json:"list_type,omitempty"`
	Start      int           `json:"start,omitempty"`
	Checked    bool          `json:"checked,omitempty"`
	Header     bool          `json:"header,omitempty"`
	Language   string        `json:"language,omitempty"`
	URL        string        `json:"url,omitempty"`
	Alt        string        `json:"alt,omitempty"`
	Src        string        `json:"src,omitempty"`
	Expression string        `json:"expression,omitempty"`
	EmbedKind  string        `json:"embed_kind,omitempty"`
	EmbedID    string        `json:"embed_id,omitempty"`
	Children   []OutlineNode `json:"children,omitempty"`
}

var formatNames = []struct {
	flag Format
	name string
}{
	{FormatBold, "bold"},
	{FormatItalic, "italic"},
	{FormatStrikethrough, "strikethrough"},
	{FormatCode, "code"},
	{FormatHighlight, "highlight"},
	{FormatUnderline, "underline"},
}

// Outline builds the serialisable view of id and its descendants.
func (t *Tree) Outline(id NodeID) OutlineNode {
	n := t.Node(id)
	if n == nil {
		return OutlineNode{}
	}
	out := OutlineNode{
		Kind:       n.Kind.String(),
		Text:       n.Text,
		Level:      n.Level,
		Header:     n.Header,
		Language:   n.Language,
		URL:        n.URL,
		Alt:        n.Alt,
		Src:        n.Src,
		Expression: n.Expression,
		EmbedKind:  n.EmbedKind,
		EmbedID:    n.EmbedID,
	}
	for _, f := range formatNames {
		if n.Format.Has(f.flag) {
			out.Format = append(out.Format, f.name)
		}
	}
	switch n.Kind {
	case KindList:
		out.ListType = n.ListType.String()
		out.Start = n.Start
	case KindListItem:
		out.Checked = n.Checked
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, t.Outline(c))
	}
	return out
}
