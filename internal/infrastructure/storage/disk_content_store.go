package storage

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"vistoria_itl/internal/usecase/interfaces"
)

const defaultContentDir = "content"

var ErrPathOutsideContentRoot = errors.New("artifact path escapes the content root")

// DiskContentStore keeps photos and generated PDFs on local disk under the
// content root (CONTENT_DIR). Stored paths are relative to that root and map
// one-to-one onto the static /content retrieval route.

type DiskContentStore struct {
	root string
}

var _ interfaces.IContentStore = (*DiskContentStore)(nil)

func NewDiskContentStore() *DiskContentStore {
	root := os.Getenv("CONTENT_DIR")
	if root == "" {
		root = defaultContentDir
	}
	return &DiskContentStore{root: root}
}

// Root returns the content directory served by the static route.
func (s *DiskContentStore) Root() string {
	return s.root
}

func (s *DiskContentStore) Save(_ context.Context, relPath string, data []byte) (string, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		log.Printf("[content][store] write failed path=%s err=%v", relPath, err)
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

func (s *DiskContentStore) Read(_ context.Context, relPath string) ([]byte, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

func (s *DiskContentStore) resolve(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", ErrPathOutsideContentRoot
	}
	return filepath.Join(s.root, clean), nil
}
