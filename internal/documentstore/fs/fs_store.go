package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"moogship/internal/domain"
	"moogship/internal/port"
)

type fsStore struct {
	root string
}

// NewStore creates a DocumentStore that reads extracted document text from
// files under root.
func NewStore(root string) port.DocumentStore {
	return &fsStore{root: root}
}

func (s *fsStore) ReadDocument(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, filepath.Clean(id))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
		}
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	return string(data), nil
}
