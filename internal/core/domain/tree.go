package domain

import (
	"fmt"
	"strings"
)

// Selection is a caret position: a node and an offset into it. For text
// runs the offset counts bytes, for other nodes it counts children.
type Selection struct {
	Node   NodeID
	Offset int
}

// Tree is an arena-backed document tree. Nodes are addressed by NodeID and
// each node keeps its children as an ordered slice, so sibling walks are
// slice iteration and removal is a slice delete.
//
// A Tree is not safe for concurrent use; callers hold it exclusively for
// the duration of a conversion.
type Tree struct {
	nodes     []*Node
	selection Selection
}

// NewTree creates a tree holding only a root node.
func NewTree() *Tree {
	t := &Tree{selection: Selection{Node: NoNode}}
	t.NewNode(KindRoot)
	return t
}

// Root returns the root node ID.
func (t *Tree) Root() NodeID {
	return RootID
}

// Len returns the number of arena slots, detached nodes included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node for id, or nil when id is out of range.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// NewNode allocates a detached node of the given kind.
func (t *Tree) NewNode(kind Kind) *Node {
	n := &Node{
		ID:     NodeID(len(t.nodes)),
		Kind:   kind,
		Parent: NoNode,
	}
	t.nodes = append(t.nodes, n)
	return n
}

// NewText allocates a detached text run.
func (t *Tree) NewText(text string, format Format) *Node {
	n := t.NewNode(KindText)
	n.Text = text
	n.Format = format
	return n
}

// Children returns the ordered child IDs of id. The slice must not be
// modified by the caller.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return n.Children
}

// Attached reports whether id is reachable from the root.
func (t *Tree) Attached(id NodeID) bool {
	for id != NoNode {
		if id == RootID {
			return true
		}
		n := t.Node(id)
		if n == nil {
			return false
		}
		id = n.Parent
	}
	return false
}

// IndexOf returns the position of id among its siblings, or -1.
func (t *Tree) IndexOf(id NodeID) int {
	n := t.Node(id)
	if n == nil || n.Parent == NoNode {
		return -1
	}
	for i, c := range t.nodes[n.Parent].Children {
		if c == id {
			return i
		}
	}
	return -1
}

// PrevSibling returns the sibling immediately before id, or NoNode.
func (t *Tree) PrevSibling(id NodeID) NodeID {
	i := t.IndexOf(id)
	if i <= 0 {
		return NoNode
	}
	return t.nodes[t.nodes[id].Parent].Children[i-1]
}

// NextSibling returns the sibling immediately after id, or NoNode.
func (t *Tree) NextSibling(id NodeID) NodeID {
	i := t.IndexOf(id)
	if i < 0 {
		return NoNode
	}
	siblings := t.nodes[t.nodes[id].Parent].Children
	if i+1 >= len(siblings) {
		return NoNode
	}
	return siblings[i+1]
}

// LastChild returns the last child of id, or NoNode.
func (t *Tree) LastChild(id NodeID) NodeID {
	children := t.Children(id)
	if len(children) == 0 {
		return NoNode
	}
	return children[len(children)-1]
}

// Append moves child to the end of parent's children.
func (t *Tree) Append(parent, child NodeID) error {
	p := t.Node(parent)
	if p == nil {
		return fmt.Errorf("append to %d: %w", parent, ErrNotFound)
	}
	return t.InsertAt(parent, len(p.Children), child)
}

// InsertAt moves child to position index among parent's children.
func (t *Tree) InsertAt(parent NodeID, index int, child NodeID) error {
	p, c := t.Node(parent), t.Node(child)
	if p == nil || c == nil {
		return fmt.Errorf("insert %d into %d: %w", child, parent, ErrNotFound)
	}
	if child == RootID {
		return fmt.Errorf("insert root: %w", ErrInvalidInput)
	}
	if c.Parent != NoNode {
		if c.Parent == parent && t.IndexOf(child) < index {
			index--
		}
		t.detach(c)
	}
	if index < 0 || index > len(p.Children) {
		index = len(p.Children)
	}
	p.Children = append(p.Children, NoNode)
	copy(p.Children[index+1:], p.Children[index:])
	p.Children[index] = child
	c.Parent = parent
	return nil
}

// InsertBefore moves child to sit immediately before ref.
func (t *Tree) InsertBefore(ref, child NodeID) error {
	r := t.Node(ref)
	if r == nil || r.Parent == NoNode {
		return fmt.Errorf("insert before %d: %w", ref, ErrDetached)
	}
	return t.InsertAt(r.Parent, t.IndexOf(ref), child)
}

// InsertAfter moves child to sit immediately after ref.
func (t *Tree) InsertAfter(ref, child NodeID) error {
	r := t.Node(ref)
	if r == nil || r.Parent == NoNode {
		return fmt.Errorf("insert after %d: %w", ref, ErrDetached)
	}
	return t.InsertAt(r.Parent, t.IndexOf(ref)+1, child)
}

// Remove detaches id from its parent. The node stays in the arena.
func (t *Tree) Remove(id NodeID) error {
	n := t.Node(id)
	if n == nil {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	if n.Parent == NoNode {
		return fmt.Errorf("remove %d: %w", id, ErrDetached)
	}
	t.detach(n)
	if t.selection.Node != NoNode && !t.Attached(t.selection.Node) {
		t.selection = Selection{Node: NoNode}
	}
	return nil
}

// Replace puts repl where old is and detaches old.
func (t *Tree) Replace(old, repl NodeID) error {
	if err := t.InsertBefore(old, repl); err != nil {
		return err
	}
	return t.Remove(old)
}

func (t *Tree) detach(n *Node) {
	p := t.nodes[n.Parent]
	for i, c := range p.Children {
		if c == n.ID {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.Parent = NoNode
}

// TextContent returns the plain-text projection of id: text runs verbatim,
// line breaks as newlines, equations as their expression and child blocks
// separated by newlines.
func (t *Tree) TextContent(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindText:
		return n.Text
	case KindLineBreak:
		return "\n"
	case KindEquation:
		return n.Expression
	case KindInlineImage, KindImage:
		return n.Alt
	case KindCodeBlock:
		return n.Text
	}

	var sb strings.Builder
	for i, c := range n.Children {
		child := t.nodes[c]
		if i > 0 && !child.Kind.IsInline() {
			sb.WriteString("\n")
		}
		sb.WriteString(t.TextContent(c))
	}
	return sb.String()
}

// SpliceText cuts the byte range [start,end) out of text run id and puts
// repl in its place. The run keeps the text before start; the text after
// end moves to a new run with the same format, which is returned as tail
// (NoNode when empty). An empty leading run is removed.
func (t *Tree) SpliceText(id NodeID, start, end int, repl NodeID) (NodeID, error) {
	n := t.Node(id)
	if n == nil || n.Kind != KindText {
		return NoNode, fmt.Errorf("splice %d: %w", id, ErrInvalidInput)
	}
	if start < 0 || end > len(n.Text) || start > end {
		return NoNode, fmt.Errorf("splice %d [%d:%d]: %w", id, start, end, ErrInvalidInput)
	}
	before, after := n.Text[:start], n.Text[end:]

	anchor := id
	if repl != NoNode {
		if err := t.InsertAfter(id, repl); err != nil {
			return NoNode, err
		}
		anchor = repl
	}

	tail := NoNode
	if after != "" {
		rest := t.NewText(after, n.Format)
		if err := t.InsertAfter(anchor, rest.ID); err != nil {
			return NoNode, err
		}
		tail = rest.ID
	}

	n.Text = before
	if before == "" {
		if err := t.Remove(id); err != nil {
			return NoNode, err
		}
	}
	return tail, nil
}

// MergeText joins adjacent text runs under parent that share a format and
// drops empty runs.
func (t *Tree) MergeText(parent NodeID) {
	p := t.Node(parent)
	if p == nil {
		return
	}
	merged := p.Children[:0]
	for _, c := range p.Children {
		n := t.nodes[c]
		if n.Kind == KindText {
			if n.Text == "" {
				n.Parent = NoNode
				continue
			}
			if len(merged) > 0 {
				prev := t.nodes[merged[len(merged)-1]]
				if prev.Kind == KindText && prev.Format == n.Format {
					prev.Text += n.Text
					n.Parent = NoNode
					continue
				}
			}
		}
		merged = append(merged, c)
	}
	p.Children = merged
}

// AppendFragment deep-copies the root children of frag under parent and
// returns the new top-level IDs.
func (t *Tree) AppendFragment(parent NodeID, frag *Tree) ([]NodeID, error) {
	if t.Node(parent) == nil {
		return nil, fmt.Errorf("append fragment to %d: %w", parent, ErrNotFound)
	}
	var added []NodeID
	for _, c := range frag.Children(RootID) {
		id := t.copyFrom(frag, c)
		if err := t.Append(parent, id); err != nil {
			return nil, err
		}
		added = append(added, id)
	}
	return added, nil
}

func (t *Tree) copyFrom(src *Tree, id NodeID) NodeID {
	orig := src.nodes[id]
	dup := t.NewNode(orig.Kind)
	newID := dup.ID
	*dup = *orig
	dup.ID = newID
	dup.Parent = NoNode
	dup.Children = nil
	for _, c := range orig.Children {
		cid := t.copyFrom(src, c)
		t.nodes[cid].Parent = newID
		dup.Children = append(dup.Children, cid)
	}
	return newID
}

// Selection returns the current selection.
func (t *Tree) Selection() Selection {
	return t.selection
}

// SetSelection replaces the current selection.
func (t *Tree) SetSelection(sel Selection) {
	t.selection = sel
}

// SelectEnd places the selection at the end of id's deepest last
// descendant.
func (t *Tree) SelectEnd(id NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	for len(n.Children) > 0 {
		n = t.nodes[n.Children[len(n.Children)-1]]
	}
	offset := len(n.Children)
	if n.Kind == KindText {
		offset = len(n.Text)
	}
	t.selection = Selection{Node: n.ID, Offset: offset}
}

// TopLevel returns the root child that contains id, or NoNode.
func (t *Tree) TopLevel(id NodeID) NodeID {
	for id != NoNode {
		n := t.Node(id)
		if n == nil {
			return NoNode
		}
		if n.Parent == RootID {
			return id
		}
		id = n.Parent
	}
	return NoNode
}
