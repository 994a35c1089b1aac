package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moogship/internal/domain"
)

func TestFSStore_ReadDocument(t *testing.T) {
	root := t.TempDir()
	content := "6208.19.10 Of cotton\n14.9%\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "schedule.txt"), []byte(content), 0o644))

	store := NewStore(root)

	t.Run("reads_existing_file", func(t *testing.T) {
		text, err := store.ReadDocument(context.Background(), "schedule.txt")
		require.NoError(t, err)
		assert.Equal(t, content, text)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := store.ReadDocument(context.Background(), "nope.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := store.ReadDocument(ctx, "schedule.txt")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cleans_relative_segments", func(t *testing.T) {
		text, err := store.ReadDocument(context.Background(), "./schedule.txt")
		require.NoError(t, err)
		assert.Equal(t, content, text)
	})
}
