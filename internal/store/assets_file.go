package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/Harshitk-cp/guestchat/internal/domain"
)

// FileAssetStore reads tenant assets from <root>/<asset path>/<name>.
type FileAssetStore struct {
	fsys fs.FS
}

func NewFileAssetStore(root string) *FileAssetStore {
	return NewFileAssetStoreFS(os.DirFS(root))
}

func NewFileAssetStoreFS(fsys fs.FS) *FileAssetStore {
	return &FileAssetStore{fsys: fsys}
}

func (s *FileAssetStore) Read(ctx context.Context, assetPath, name string) (string, error) {
	p := path.Join(assetPath, name)
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("%w: invalid asset path %q", domain.ErrAssetUnavailable, p)
	}

	raw, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssetUnavailable, err)
	}
	return string(raw), nil
}
