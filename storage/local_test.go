package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/media/")
	if err != nil {
		t.Fatal(err)
	}

	url, err := store.Save(context.Background(), "community/images/x.jpg", []byte("jpeg bytes"), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if url != "/media/community/images/x.jpg" {
		t.Errorf("url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "community", "images", "x.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestNewLocalStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "media")
	if _, err := NewLocalStorage(dir, "/media"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("media dir not created: %v", err)
	}
}
