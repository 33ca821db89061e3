package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"math"

	_ "image/gif"
	_ "image/png"

	"github.com/ITECH-Group8/WellLog/storage"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

const (
	maxImageWidth  = 1200
	thumbnailWidth = 300

	imageJPEGQuality     = 80
	thumbnailJPEGQuality = 70
)

// ImageService normalizes uploaded images and stores them as JPEG. The
// primary store is tried first; on failure the blob falls back to the
// local store so a post never loses its image to an S3 outage.
type ImageService struct {
	primary  storage.BlobStorage
	fallback storage.BlobStorage
}

func NewImageService(primary, fallback storage.BlobStorage) *ImageService {
	return &ImageService{primary: primary, fallback: fallback}
}

// ProcessAndStore decodes the upload, produces a full image capped at
// 1200px wide plus a 300px-wide thumbnail, and stores both. Returns the
// two public URLs.
func (s *ImageService) ProcessAndStore(ctx context.Context, data []byte) (imageURL, thumbURL string, err error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	full := scaleToWidth(src, maxImageWidth, false)
	thumb := scaleToWidth(src, thumbnailWidth, true)

	fullJPEG, err := encodeJPEG(full, imageJPEGQuality)
	if err != nil {
		return "", "", err
	}
	thumbJPEG, err := encodeJPEG(thumb, thumbnailJPEGQuality)
	if err != nil {
		return "", "", err
	}

	id := uuid.New().String()
	imageURL, err = s.store(ctx, fmt.Sprintf("community/images/%s.jpg", id), fullJPEG)
	if err != nil {
		return "", "", err
	}
	thumbURL, err = s.store(ctx, fmt.Sprintf("community/thumbnails/thumb_%s.jpg", id), thumbJPEG)
	if err != nil {
		return "", "", err
	}
	return imageURL, thumbURL, nil
}

func (s *ImageService) store(ctx context.Context, key string, data []byte) (string, error) {
	url, err := s.primary.Save(ctx, key, data, "image/jpeg")
	if err == nil {
		return url, nil
	}
	if s.fallback == nil {
		return "", err
	}
	slog.Warn("primary blob store failed, falling back to local", "key", key, "err", err)
	return s.fallback.Save(ctx, key, data, "image/jpeg")
}

// scaleToWidth resizes to the target width keeping aspect ratio. The
// full image is only ever downscaled; thumbnails are always rendered at
// the target width.
func scaleToWidth(src image.Image, width int, force bool) image.Image {
	b := src.Bounds()
	if !force && b.Dx() <= width {
		return src
	}
	height := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
