package storage

import (
	"context"
	"errors"
	"testing"
)

func TestDiskContentStore_SaveAndRead(t *testing.T) {
	t.Setenv("CONTENT_DIR", t.TempDir())
	store := NewDiskContentStore()

	stored, err := store.Save(context.Background(), "reports/app-1/front_f.jpg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if stored != "reports/app-1/front_f.jpg" {
		t.Fatalf("stored path must stay relative, got %s", stored)
	}

	data, err := store.Read(context.Background(), stored)
	if err != nil || string(data) != "jpeg-bytes" {
		t.Fatalf("unexpected read result err=%v data=%q", err, data)
	}

	// Re-saving a slot overwrites its previous content.
	if _, err := store.Save(context.Background(), stored, []byte("newer")); err != nil {
		t.Fatalf("unexpected overwrite error: %v", err)
	}
	data, err = store.Read(context.Background(), stored)
	if err != nil || string(data) != "newer" {
		t.Fatalf("overwrite not visible err=%v data=%q", err, data)
	}
}

func TestDiskContentStore_RejectsEscapingPaths(t *testing.T) {
	t.Setenv("CONTENT_DIR", t.TempDir())
	store := NewDiskContentStore()

	for _, relPath := range []string{"../outside.txt", "..", "/etc/passwd", "reports/../../outside.txt", "."} {
		if _, err := store.Save(context.Background(), relPath, []byte("x")); !errors.Is(err, ErrPathOutsideContentRoot) {
			t.Fatalf("Save(%q) expected ErrPathOutsideContentRoot, got %v", relPath, err)
		}
		if _, err := store.Read(context.Background(), relPath); !errors.Is(err, ErrPathOutsideContentRoot) {
			t.Fatalf("Read(%q) expected ErrPathOutsideContentRoot, got %v", relPath, err)
		}
	}
}
