package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	now := time.Now()
	doc := &domain.Document{
		ID:        "doc-1",
		Title:     "Notes",
		URI:       "/notes/a.md",
		Markdown:  "# Notes",
		Metadata:  map[string]any{"source": "cli"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Notes", got.Title)
	assert.Equal(t, "# Notes", got.Markdown)
	assert.Equal(t, "cli", got.Metadata["source"])

	// Mutating the returned copy does not reach the store.
	got.Metadata["source"] = "changed"
	again, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "cli", again.Metadata["source"])
}

func TestDocumentStore_Save_Invalid(t *testing.T) {
	store := NewDocumentStore()
	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.Document{}), domain.ErrInvalidInput)
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store := NewDocumentStore()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_GetByURI(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "a", URI: "/x.md"}))
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "b"}))

	got, err := store.GetByURI(ctx, "/x.md")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = store.GetByURI(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.GetByURI(ctx, "/y.md")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Save_URIIsUnique(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "old", URI: "/x.md"}))
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "new", URI: "/x.md"}))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "new", docs[0].ID)
}

func TestDocumentStore_List_Ordered(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "3", Title: "beta"}))
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "2", Title: "alpha"}))
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "1", Title: "alpha"}))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestDocumentStore_Delete(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "a"}))

	require.NoError(t, store.Delete(ctx, "a"))
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "a"))
}

func TestDocumentStore_Concurrency(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n))
			_ = store.Save(ctx, &domain.Document{ID: id, Title: id})
			_, _ = store.List(ctx)
		}(i)
	}
	wg.Wait()

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 20)
}
