package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("paste.convert_html", true))
	require.NoError(t, store.Set("classifier.short_line_threshold", 60))
	require.NoError(t, store.Set("classifier.allowed_tags", []string{"div", "span"}))
	require.NoError(t, store.Set("emoji.aliases_file", "/tmp/aliases.toml"))

	assert.True(t, store.GetBool("paste.convert_html"))
	assert.Equal(t, 60, store.GetInt("classifier.short_line_threshold"))
	assert.Equal(t, []string{"div", "span"}, store.GetStringSlice("classifier.allowed_tags"))
	assert.Equal(t, "/tmp/aliases.toml", store.GetString("emoji.aliases_file"))

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("emoji.aliases_file"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("paste.convert_html"))
}

func TestConfigStore_PersistsAsNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("classifier.short_line_threshold", 40))
	require.NoError(t, store.Set("storage.backend", "memory"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[classifier]")
	assert.Contains(t, string(raw), "[storage]")

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 40, reopened.GetInt("classifier.short_line_threshold"))
	assert.Equal(t, "memory", reopened.GetString("storage.backend"))
	assert.Equal(t, []string{"classifier.short_line_threshold", "storage.backend"}, reopened.Keys())
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[classifier]
short_line_threshold = 100
allowed_tags = ["div", "p"]

[paste]
convert_html = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 100, store.GetInt("classifier.short_line_threshold"))
	assert.Equal(t, []string{"div", "p"}, store.GetStringSlice("classifier.allowed_tags"))
	assert.True(t, store.GetBool("paste.convert_html"))
}

func TestConfigStore_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestNest(t *testing.T) {
	got := nest(map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"top":   true,
	})
	assert.Equal(t, map[string]any{
		"a":   map[string]any{"b": 1, "c": map[string]any{"d": "x"}},
		"top": true,
	}, got)

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "top": true}, flatten(got, ""))
}

func TestNest_ValueAndTableClash(t *testing.T) {
	got := nest(map[string]any{
		"a":   1,
		"a.b": 2,
	})
	assert.Equal(t, 1, got["a"])
	assert.Equal(t, 2, got["a.b"])
}
