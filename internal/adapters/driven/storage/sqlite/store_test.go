package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// setupTestStore creates a store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func TestNewStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "documents.db"), store.Path())

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.DocumentStore().Save(ctx, &domain.Document{
		ID: "doc-1", Title: "kept", CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.DocumentStore().Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "kept", got.Title)

	version, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestStore_Migrate_SkipsAppliedAndUnnumbered(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"001_initial.up.sql": {Data: []byte("SELECT broken syntax here")},
		"002_extra.up.sql":   {Data: []byte("CREATE TABLE extra (id INTEGER)")},
		"readme.up.sql":      {Data: []byte("also broken")},
		"002_extra.down.sql": {Data: []byte("DROP TABLE extra")},
	}
	require.NoError(t, store.migrate(fsys))

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	_, err = store.db.Exec("INSERT INTO extra (id) VALUES (1)")
	assert.NoError(t, err)
}

func TestStore_Migrate_FailureRollsBack(t *testing.T) {
	store := setupTestStore(t)

	err := store.migrate(fstest.MapFS{
		"005_bad.up.sql": {Data: []byte("CREATE TABLE nope (")},
	})
	assert.Error(t, err)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	doc := &domain.Document{
		ID:        "doc-1",
		Title:     "Notes",
		URI:       "/notes/a.md",
		Markdown:  "# Notes\n\n| a | b |",
		Metadata:  map[string]any{"source": "sync"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, docs.Save(ctx, doc))

	got, err := docs.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.URI, got.URI)
	assert.Equal(t, doc.Markdown, got.Markdown)
	assert.Equal(t, "sync", got.Metadata["source"])
	assert.WithinDuration(t, now, got.CreatedAt, time.Second)

	byURI, err := docs.GetByURI(ctx, "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", byURI.ID)
}

func TestDocumentStore_Save_Update(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, docs.Save(ctx, &domain.Document{ID: "d", Title: "v1", CreatedAt: created, UpdatedAt: created}))
	require.NoError(t, docs.Save(ctx, &domain.Document{ID: "d", Title: "v2", Markdown: "x", CreatedAt: time.Now(), UpdatedAt: time.Now()}))

	got, err := docs.Get(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)
	assert.Equal(t, "x", got.Markdown)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
}

func TestDocumentStore_Save_ReplacesSameURI(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, docs.Save(ctx, &domain.Document{ID: "old", URI: "/x.md", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, docs.Save(ctx, &domain.Document{ID: "new", URI: "/x.md", CreatedAt: now, UpdatedAt: now}))

	list, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].ID)
}

func TestDocumentStore_Save_Invalid(t *testing.T) {
	store := setupTestStore(t)
	assert.ErrorIs(t, store.DocumentStore().Save(context.Background(), nil), domain.ErrInvalidInput)
}

func TestDocumentStore_NotFound(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	_, err := docs.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = docs.GetByURI(ctx, "/missing.md")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = docs.GetByURI(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListAndDelete(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	empty, err := docs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	now := time.Now()
	for _, d := range []domain.Document{
		{ID: "3", Title: "gamma"},
		{ID: "1", Title: "alpha"},
		{ID: "2", Title: "beta"},
	} {
		d.CreatedAt, d.UpdatedAt = now, now
		require.NoError(t, docs.Save(ctx, &d))
	}

	list, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].Title)
	assert.Equal(t, "gamma", list[2].Title)

	require.NoError(t, docs.Delete(ctx, "2"))
	require.NoError(t, docs.Delete(ctx, "2"))
	list, err = docs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
