package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ITECH-Group8/WellLog/storage"
)

type failingStore struct{}

func (failingStore) Save(context.Context, string, []byte, string) (string, error) {
	return "", errors.New("bucket unreachable")
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newLocalStore(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestProcessAndStoreDownscalesWideImages(t *testing.T) {
	svc := NewImageService(newLocalStore(t), nil)

	imageURL, thumbURL, err := svc.ProcessAndStore(context.Background(), testPNG(t, 2400, 1200))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(imageURL, "/media/community/images/") || !strings.HasSuffix(imageURL, ".jpg") {
		t.Errorf("imageURL = %q", imageURL)
	}
	if !strings.Contains(thumbURL, "/community/thumbnails/thumb_") {
		t.Errorf("thumbURL = %q", thumbURL)
	}
}

func TestProcessAndStoreKeepsSmallImages(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "/media")
	if err != nil {
		t.Fatal(err)
	}
	svc := NewImageService(store, nil)

	imageURL, _, err := svc.ProcessAndStore(context.Background(), testPNG(t, 640, 480))
	if err != nil {
		t.Fatal(err)
	}

	// re-decode the stored full image and check it was not upscaled
	data, err := readStored(dir, imageURL)
	if err != nil {
		t.Fatal(err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 640 {
		t.Errorf("full image width = %d, want 640 (no upscale)", img.Bounds().Dx())
	}
}

func TestProcessAndStoreFallsBackToLocal(t *testing.T) {
	svc := NewImageService(failingStore{}, newLocalStore(t))

	imageURL, thumbURL, err := svc.ProcessAndStore(context.Background(), testPNG(t, 100, 100))
	if err != nil {
		t.Fatalf("fallback path failed: %v", err)
	}
	if imageURL == "" || thumbURL == "" {
		t.Errorf("urls = %q, %q", imageURL, thumbURL)
	}
}

func TestProcessAndStoreRejectsGarbage(t *testing.T) {
	svc := NewImageService(newLocalStore(t), nil)
	if _, _, err := svc.ProcessAndStore(context.Background(), []byte("not an image")); err == nil {
		t.Error("expected decode error for non-image input")
	}
}

func readStored(mediaDir, url string) ([]byte, error) {
	rel := strings.TrimPrefix(url, "/media/")
	return os.ReadFile(filepath.Join(mediaDir, filepath.FromSlash(rel)))
}
