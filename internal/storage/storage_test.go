package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:4000/uploads/")
	if err != nil {
		t.Fatalf("NewDiskStore returned error: %v", err)
	}

	url, err := store.Save("finca.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:4000/uploads/") || !strings.HasSuffix(url, "-finca.jpg") {
		t.Fatalf("Unexpected URL: %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	if err != nil {
		t.Fatalf("Saved object missing on disk: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("Unexpected contents: %q", data)
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.Base(url))); !os.IsNotExist(err) {
		t.Fatal("Expected object gone after Remove")
	}

	// Removing a URL that is already gone is not an error.
	if err := store.Remove(url); err != nil {
		t.Fatalf("Second Remove must be a no-op, got %v", err)
	}
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewDiskStore returned error: %v", err)
	}

	u1, _ := store.Save("finca.jpg", strings.NewReader("a"))
	u2, _ := store.Save("finca.jpg", strings.NewReader("b"))
	if u1 == u2 {
		t.Fatal("Two saves of the same filename must not collide")
	}
}
