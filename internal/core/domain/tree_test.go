package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paragraph appends a paragraph with one text run under the root.
func paragraph(t *testing.T, tree *Tree, text string) NodeID {
	t.Helper()
	p := tree.NewNode(KindParagraph)
	require.NoError(t, tree.Append(tree.Root(), p.ID))
	run := tree.NewText(text, 0)
	require.NoError(t, tree.Append(p.ID, run.ID))
	return p.ID
}

func TestNewTree(t *testing.T) {
	tree := NewTree()
	require.NotNil(t, tree)
	assert.Equal(t, RootID, tree.Root())
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, KindRoot, tree.Node(RootID).Kind)
	assert.Equal(t, NoNode, tree.Selection().Node)
	assert.True(t, tree.Attached(RootID))
}

func TestTree_Node_OutOfRange(t *testing.T) {
	tree := NewTree()
	assert.Nil(t, tree.Node(-1))
	assert.Nil(t, tree.Node(99))
}

func TestTree_Siblings(t *testing.T) {
	tree := NewTree()
	a := paragraph(t, tree, "a")
	b := paragraph(t, tree, "b")
	c := paragraph(t, tree, "c")

	assert.Equal(t, NoNode, tree.PrevSibling(a))
	assert.Equal(t, a, tree.PrevSibling(b))
	assert.Equal(t, c, tree.NextSibling(b))
	assert.Equal(t, NoNode, tree.NextSibling(c))
	assert.Equal(t, 1, tree.IndexOf(b))
	assert.Equal(t, c, tree.LastChild(tree.Root()))
}

func TestTree_InsertAndRemove(t *testing.T) {
	tree := NewTree()
	a := paragraph(t, tree, "a")
	c := paragraph(t, tree, "c")

	b := tree.NewNode(KindParagraph)
	require.NoError(t, tree.InsertBefore(c, b.ID))
	assert.Equal(t, []NodeID{a, b.ID, c}, tree.Children(tree.Root()))

	d := tree.NewNode(KindHorizontalRule)
	require.NoError(t, tree.InsertAfter(c, d.ID))
	assert.Equal(t, d.ID, tree.LastChild(tree.Root()))

	require.NoError(t, tree.Remove(b.ID))
	assert.False(t, tree.Attached(b.ID))
	assert.Equal(t, []NodeID{a, c, d.ID}, tree.Children(tree.Root()))

	err := tree.Remove(b.ID)
	assert.ErrorIs(t, err, ErrDetached)
}

func TestTree_InsertAt_MovesWithinParent(t *testing.T) {
	tree := NewTree()
	a := paragraph(t, tree, "a")
	b := paragraph(t, tree, "b")
	c := paragraph(t, tree, "c")

	require.NoError(t, tree.InsertAt(tree.Root(), 3, a))
	assert.Equal(t, []NodeID{b, c, a}, tree.Children(tree.Root()))
}

func TestTree_Replace(t *testing.T) {
	tree := NewTree()
	a := paragraph(t, tree, "a")
	b := paragraph(t, tree, "b")

	hr := tree.NewNode(KindHorizontalRule)
	require.NoError(t, tree.Replace(a, hr.ID))
	assert.Equal(t, []NodeID{hr.ID, b}, tree.Children(tree.Root()))
	assert.False(t, tree.Attached(a))
}

func TestTree_Errors(t *testing.T) {
	tree := NewTree()
	assert.ErrorIs(t, tree.Append(42, 1), ErrNotFound)
	assert.ErrorIs(t, tree.Remove(42), ErrNotFound)
	assert.ErrorIs(t, tree.InsertAt(RootID, 0, RootID), ErrInvalidInput)

	orphan := tree.NewNode(KindParagraph)
	other := tree.NewNode(KindParagraph)
	assert.ErrorIs(t, tree.InsertBefore(orphan.ID, other.ID), ErrDetached)
}

func TestTree_TextContent(t *testing.T) {
	tree := NewTree()
	p := paragraph(t, tree, "x = ")
	eq := tree.NewNode(KindEquation)
	eq.Expression = "a+b"
	require.NoError(t, tree.Append(p, eq.ID))
	br := tree.NewNode(KindLineBreak)
	require.NoError(t, tree.Append(p, br.ID))
	require.NoError(t, tree.Append(p, tree.NewText("done", FormatBold).ID))
	paragraph(t, tree, "second")

	assert.Equal(t, "x = a+b\ndone", tree.TextContent(p))
	assert.Equal(t, "x = a+b\ndone\nsecond", tree.TextContent(tree.Root()))
}

func TestTree_SpliceText(t *testing.T) {
	t.Run("middle of run", func(t *testing.T) {
		tree := NewTree()
		p := paragraph(t, tree, "ab$x$cd")
		run := tree.Children(p)[0]
		eq := tree.NewNode(KindEquation)

		tail, err := tree.SpliceText(run, 2, 5, eq.ID)
		require.NoError(t, err)
		require.NotEqual(t, NoNode, tail)

		children := tree.Children(p)
		require.Len(t, children, 3)
		assert.Equal(t, "ab", tree.Node(children[0]).Text)
		assert.Equal(t, eq.ID, children[1])
		assert.Equal(t, "cd", tree.Node(tail).Text)
	})

	t.Run("whole run", func(t *testing.T) {
		tree := NewTree()
		p := paragraph(t, tree, "$x$")
		run := tree.Children(p)[0]
		eq := tree.NewNode(KindEquation)

		tail, err := tree.SpliceText(run, 0, 3, eq.ID)
		require.NoError(t, err)
		assert.Equal(t, NoNode, tail)
		assert.Equal(t, []NodeID{eq.ID}, tree.Children(p))
	})

	t.Run("keeps format on tail", func(t *testing.T) {
		tree := NewTree()
		p := tree.NewNode(KindParagraph)
		require.NoError(t, tree.Append(tree.Root(), p.ID))
		run := tree.NewText("left|right", FormatItalic)
		require.NoError(t, tree.Append(p.ID, run.ID))

		tail, err := tree.SpliceText(run.ID, 4, 5, NoNode)
		require.NoError(t, err)
		assert.Equal(t, "left", run.Text)
		assert.Equal(t, "right", tree.Node(tail).Text)
		assert.Equal(t, FormatItalic, tree.Node(tail).Format)
	})

	t.Run("bad range", func(t *testing.T) {
		tree := NewTree()
		p := paragraph(t, tree, "abc")
		_, err := tree.SpliceText(tree.Children(p)[0], 2, 9, NoNode)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestTree_MergeText(t *testing.T) {
	tree := NewTree()
	p := paragraph(t, tree, "a")
	require.NoError(t, tree.Append(p, tree.NewText("b", 0).ID))
	require.NoError(t, tree.Append(p, tree.NewText("", 0).ID))
	require.NoError(t, tree.Append(p, tree.NewText("c", FormatBold).ID))
	require.NoError(t, tree.Append(p, tree.NewText("d", FormatBold).ID))

	tree.MergeText(p)

	children := tree.Children(p)
	require.Len(t, children, 2)
	assert.Equal(t, "ab", tree.Node(children[0]).Text)
	assert.Equal(t, "cd", tree.Node(children[1]).Text)
	assert.Equal(t, FormatBold, tree.Node(children[1]).Format)
}

func TestTree_AppendFragment(t *testing.T) {
	frag := NewTree()
	paragraph(t, frag, "one")
	paragraph(t, frag, "two")

	tree := NewTree()
	cell := tree.NewNode(KindTableCell)
	require.NoError(t, tree.Append(tree.Root(), cell.ID))

	added, err := tree.AppendFragment(cell.ID, frag)
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, "one\ntwo", tree.TextContent(cell.ID))
	for _, id := range added {
		assert.Equal(t, cell.ID, tree.Node(id).Parent)
		assert.True(t, tree.Attached(id))
	}
}

func TestTree_SelectEnd(t *testing.T) {
	tree := NewTree()
	paragraph(t, tree, "first")
	p := paragraph(t, tree, "last")

	tree.SelectEnd(tree.Root())
	sel := tree.Selection()
	assert.Equal(t, tree.Children(p)[0], sel.Node)
	assert.Equal(t, 4, sel.Offset)

	require.NoError(t, tree.Remove(p))
	assert.Equal(t, NoNode, tree.Selection().Node)
}

func TestTree_TopLevel(t *testing.T) {
	tree := NewTree()
	p := paragraph(t, tree, "x")
	run := tree.Children(p)[0]
	assert.Equal(t, p, tree.TopLevel(run))
	assert.Equal(t, NoNode, tree.TopLevel(tree.NewNode(KindText).ID))
}

func TestTree_Outline(t *testing.T) {
	tree := NewTree()
	list := tree.NewNode(KindList)
	list.ListType = ListCheck
	require.NoError(t, tree.Append(tree.Root(), list.ID))
	item := tree.NewNode(KindListItem)
	item.Checked = true
	require.NoError(t, tree.Append(list.ID, item.ID))
	require.NoError(t, tree.Append(item.ID, tree.NewText("done", FormatBold|FormatItalic).ID))

	out := tree.Outline(tree.Root())
	require.Len(t, out.Children, 1)
	assert.Equal(t, "list", out.Children[0].Kind)
	assert.Equal(t, "check", out.Children[0].ListType)
	assert.True(t, out.Children[0].Children[0].Checked)
	assert.Equal(t, []string{"bold", "italic"}, out.Children[0].Children[0].Children[0].Format)
}
