// Package service provides image loading and metadata extraction services.
package service

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nicky-ayoub/gifview/internal/anim"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DefaultCacheSize is the number of decoded images kept by NewImageService.
const DefaultCacheSize = 8

// ErrEmptyImage is returned when a file decodes to zero frames.
var ErrEmptyImage = errors.New("image has no frames")

// ImageInfo holds metadata about an image.
type ImageInfo struct {
	Width    int
	Height   int
	Format   string
	Size     int64
	ModTime  time.Time
	EXIFData map[string]string
}

// ImageService decodes images into animations and shares the results between
// callers. It is safe for concurrent use.
type ImageService struct {
	cache *lru.Cache[string, *anim.Animation]
}

// NewImageService creates a new ImageService with the default cache size.
func NewImageService() *ImageService {
	is, err := NewImageServiceSize(DefaultCacheSize)
	if err != nil {
		// Only a non-positive size fails.
		panic(err)
	}
	return is
}

// NewImageServiceSize creates an ImageService that keeps up to size decoded
// images.
func NewImageServiceSize(size int) (*ImageService, error) {
	cache, err := lru.New[string, *anim.Animation](size)
	if err != nil {
		return nil, fmt.Errorf("creating decode cache: %w", err)
	}
	return &ImageService{cache: cache}, nil
}

// Load returns the decoded animation for path. A path that was decoded before
// is served from the cache without touching the file again.
func (is *ImageService) Load(path string) (*anim.Animation, error) {
	if a, ok := is.cache.Get(path); ok {
		return a, nil
	}

	a, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	is.cache.Add(path, a)
	return a, nil
}

// Forget drops path from the cache so the next Load decodes it again.
func (is *ImageService) Forget(path string) {
	is.cache.Remove(path)
}

// GetImageInfo reads an image file and extracts metadata without decoding the full image,
// which is significantly more performant.
func (is *ImageService) GetImageInfo(path string) (*ImageInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image config: %w", err)
	}

	// Reset file pointer to read EXIF data
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file for exif: %w", err)
	}

	exifData, _ := exif.Decode(file) // Ignore error, GIFs and PNGs rarely carry EXIF

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("getting file stats: %w", err)
	}

	info := &ImageInfo{
		Width:    config.Width,
		Height:   config.Height,
		Format:   format,
		Size:     fileInfo.Size(),
		ModTime:  fileInfo.ModTime(),
		EXIFData: make(map[string]string),
	}

	if exifData != nil {
		if camModel, err := exifData.Get(exif.Model); err == nil {
			info.EXIFData["Camera Model"] = camModel.String()
		}
		if dt, err := exifData.DateTime(); err == nil {
			info.EXIFData["Taken"] = dt.Format(time.DateTime)
		}
	}

	return info, nil
}

func decodeFile(path string) (*anim.Animation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image config: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	if format == "gif" {
		g, err := gif.DecodeAll(file)
		if err != nil {
			return nil, fmt.Errorf("decoding gif: %w", err)
		}
		return composeGIF(g)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	return anim.Still(img), nil
}
