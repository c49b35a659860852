package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080")
	if err != nil {
		t.Fatalf("new storage failed: %v", err)
	}

	content := "fake png bytes"
	ref, err := store.Save(context.Background(), "photo.png", "image/png", strings.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(ref, "http://localhost:8080/uploads/") {
		t.Errorf("unexpected reference %q", ref)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Errorf("expected extension preserved, got %q", ref)
	}

	name := ref[strings.LastIndex(ref, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("stored bytes mismatch: %q", data)
	}
}

func TestLocalStorage_SaveGeneratesUniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "")
	if err != nil {
		t.Fatalf("new storage failed: %v", err)
	}

	first, err := store.Save(context.Background(), "photo.png", "image/png", strings.NewReader("a"), 1)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := store.Save(context.Background(), "photo.png", "image/png", strings.NewReader("b"), 1)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if first == second {
		t.Error("expected distinct references for same filename")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 stored files, got %d", len(entries))
	}
}

func TestNewLocalStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewLocalStorage(dir, ""); err != nil {
		t.Fatalf("new storage failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected upload dir created: %v", err)
	}
}
