package imaging

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// ImageCache provides thread-safe caching of decoded RGB images to avoid
// redundant disk reads and decoding.
//
// Images are keyed by the exact path string passed to Load. Cached images are
// never mutated by the analysis functions, so the same *Image may be shared by
// concurrent callers.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/photo.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	green := imaging.GreeneryPercentage(img)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*Image[colorspace.RGB]
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*Image[colorspace.RGB]),
	}
}

// Load retrieves an image from the cache or reads and decodes it from disk.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. EXIF orientation
// is applied while decoding.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns an error wrapping ErrDecodeFailure if the content is not a
//     supported image
func (c *ImageCache) Load(path string) (*Image[colorspace.RGB], error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img, err := Decode(data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*Image[colorspace.RGB])
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Decode decodes an encoded image file held in memory into an RGB image.
func Decode(data []byte) (*Image[colorspace.RGB], error) {
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return FromImage(src), nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension ("png", "jpeg",
	// "gif", "bmp", "tiff") or "unknown".
	Format string `json:"format"`

	// HasAlpha is true when at least one pixel is not fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	return &ImageInfo{
		Width:         img.Width(),
		Height:        img.Height(),
		Format:        format,
		HasAlpha:      hasTransparency(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image, loading it through cache.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	return &DimensionsResult{
		Width:  img.Width(),
		Height: img.Height(),
	}, nil
}

func hasTransparency(img *Image[colorspace.RGB]) bool {
	for _, p := range img.data {
		if p.Alpha != 255 {
			return true
		}
	}
	return false
}
