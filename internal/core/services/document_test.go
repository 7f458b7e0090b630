package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marktext/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/marktext/internal/core/domain"
)

func TestNewDocumentService(t *testing.T) {
	svc, _ := newServices(t)
	require.NotNil(t, svc)
}

func TestDocumentService_Create(t *testing.T) {
	svc, store := newServices(t)
	ctx := context.Background()

	t.Run("normalises and titles from the first heading", func(t *testing.T) {
		doc, err := svc.Create(ctx, "", "intro\n\n\n# Report\r\n\n* item")
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID)
		assert.Equal(t, "Report", doc.Title)
		assert.Equal(t, "intro\n\n# Report\n\n- item", doc.Markdown)
		assert.False(t, doc.CreatedAt.IsZero())

		stored, err := store.Get(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.Markdown, stored.Markdown)
	})

	t.Run("explicit title wins", func(t *testing.T) {
		doc, err := svc.Create(ctx, "Mine", "# Heading")
		require.NoError(t, err)
		assert.Equal(t, "Mine", doc.Title)
	})

	t.Run("untitled without heading", func(t *testing.T) {
		doc, err := svc.Create(ctx, "", "just text")
		require.NoError(t, err)
		assert.Equal(t, "Untitled", doc.Title)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		failing := NewDocumentService(&failingStore{DocumentStore: memory.NewDocumentStore(), saveErr: errMock}, newCodec(t), nil)
		_, err := failing.Create(ctx, "", "x")
		assert.ErrorIs(t, err, errMock)
	})
}

func TestDocumentService_ImportFile(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "meeting-notes.md")

	require.NoError(t, os.WriteFile(path, []byte("plain start\n\n**bold**"), 0644))
	first, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "meeting-notes", first.Title)
	assert.Equal(t, path, first.URI)

	require.NoError(t, os.WriteFile(path, []byte("# Renamed\n\nnew body"), 0644))
	second, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed", second.Title)
	assert.Equal(t, "# Renamed\n\nnew body", second.Markdown)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	_, err = svc.ImportFile(ctx, filepath.Join(dir, "missing.md"))
	assert.Error(t, err)
}

func TestDocumentService_ImportContent_EmptyURI(t *testing.T) {
	svc, _ := newServices(t)
	_, err := svc.ImportContent(context.Background(), "", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_DeleteByURI(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	doc, err := svc.ImportContent(ctx, "/notes/a.md", "a")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByURI(ctx, "/notes/a.md"))
	_, err = svc.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, svc.DeleteByURI(ctx, "/notes/a.md"))
}

func TestDocumentService_TreeAndExport(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, "", "| a | b |\n| --- | --- |\n| 1 | 2 |")
	require.NoError(t, err)

	tree, err := svc.Tree(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, tree.Children(tree.Root()), 1)
	assert.Equal(t, domain.KindTable, tree.Node(tree.Children(tree.Root())[0]).Kind)

	out, err := svc.Export(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Markdown, out)

	_, err = svc.Export(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_Delete(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, "", "x")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, doc.ID))

	_, err = svc.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_Paste(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, "", "# Log")
	require.NoError(t, err)
	before := doc.UpdatedAt

	svc.now = func() time.Time { return before.Add(time.Minute) }
	result, err := svc.Paste(ctx, doc.ID, domain.PasteEvent{Text: "- first\n- second"})
	require.NoError(t, err)
	assert.Equal(t, domain.PasteMarkdown, result.Mode)

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "# Log\n\n- first\n- second", got.Markdown)
	assert.True(t, got.UpdatedAt.After(before))

	_, err = svc.Paste(ctx, "missing", domain.PasteEvent{Text: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_Paste_WithoutPasteService(t *testing.T) {
	svc := NewDocumentService(memory.NewDocumentStore(), newCodec(t), nil)
	_, err := svc.Paste(context.Background(), "id", domain.PasteEvent{Text: "x"})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestDocumentService_AppendLine(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"heading shortcut", []string{"## Section"}, "start\n\n## Section"},
		{"list items merge", []string{"- a", "- b"}, "start\n\n- a\n- b"},
		{"inline formats", []string{"some **bold** text"}, "start\n\nsome **bold** text"},
		{"typed rule keeps no empty paragraph", []string{"---"}, "start\n\n---"},
		{"empty line is dropped", []string{""}, "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newServices(t)
			doc, err := svc.Create(ctx, "", "start")
			require.NoError(t, err)

			for _, line := range tt.lines {
				doc, err = svc.AppendLine(ctx, doc.ID, line)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, doc.Markdown)
		})
	}

	t.Run("rejects multi-line input", func(t *testing.T) {
		svc, _ := newServices(t)
		_, err := svc.AppendLine(ctx, "id", "a\nb")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing document", func(t *testing.T) {
		svc, _ := newServices(t)
		_, err := svc.AppendLine(ctx, "missing", "x")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
