package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCmd_Use(t *testing.T) {
	assert.Equal(t, "sync [dir]", syncCmd.Use)
	assert.Equal(t, "watch [dir]", watchCmd.Use)
}

func TestSyncCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.md"), []byte("# Alpha\n\n* one"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beta.markdown"), []byte("beta body"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("ignored"), 0600))

	out, err := executeCommand("", "sync", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Synchronising "+dir)
	assert.Contains(t, out, "Imported 2 files")

	docs, err := documentService.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Alpha", docs[0].Title)
	assert.Equal(t, "# Alpha\n\n- one", docs[0].Markdown)
	assert.Equal(t, "beta", docs[1].Title)
}

func TestSyncCmd_MissingDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("", "sync", "/non/existent/dir")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync failed")
}

func TestWatchCmd_StopsWhenCancelled(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := executeCommandContext(ctx, "", "watch", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "watching "+dir)
}

func TestSyncCommands_NotConfigured(t *testing.T) {
	SetServices(nil)

	for _, name := range []string{"sync", "watch"} {
		t.Run(name, func(t *testing.T) {
			_, err := executeCommand("", name, t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "sync service not configured")
		})
	}
}
