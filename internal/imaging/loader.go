package imaging

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded ingredient images.
//
// Images are keyed by the exact path string given, so relative and absolute
// paths to one file are separate entries. Only decoded images are cached;
// silhouettes are always recomputed. Concurrent loads of an uncached path
// share a single decode.
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/tomato.png")
type ImageCache struct {
	mu       sync.RWMutex
	images   map[string]image.Image
	inflight map[string]*pendingLoad
}

// pendingLoad is a decode in progress; done closes once img or err is set.
type pendingLoad struct {
	done chan struct{}
	img  image.Image
	err  error
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images:   make(map[string]image.Image),
		inflight: make(map[string]*pendingLoad),
	}
}

// Load returns the cached image for path, decoding it on first use.
//
// Any format registered with the image package decodes (PNG, JPEG, GIF, plus
// BMP and TIFF through disintegration/imaging). EXIF orientation is applied,
// so a rotated phone photo yields upright pixels. Failed loads are not
// cached.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	img, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	c.mu.Lock()
	if img, ok := c.images[path]; ok {
		c.mu.Unlock()
		return img, nil
	}
	if p, ok := c.inflight[path]; ok {
		c.mu.Unlock()
		<-p.done
		return p.img, p.err
	}
	p := &pendingLoad{done: make(chan struct{})}
	c.inflight[path] = p
	c.mu.Unlock()

	p.img, p.err = decodeFile(path)

	c.mu.Lock()
	delete(c.inflight, path)
	if p.err == nil {
		c.images[path] = p.img
	}
	c.mu.Unlock()
	close(p.done)

	return p.img, p.err
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadResult is delivered by LoadAsync once decoding finishes.
type LoadResult struct {
	Path  string
	Image image.Image
	Err   error
}

// LoadAsync starts loading path in the background and returns a channel
// that receives exactly one LoadResult. The channel is buffered, so callers
// may abandon it without leaking the loader goroutine.
//
// If ctx is cancelled before decoding completes, the result carries
// ctx.Err(); the decoded image, if any, still lands in the cache.
func (c *ImageCache) LoadAsync(ctx context.Context, path string) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	done := make(chan LoadResult, 1)

	go func() {
		img, err := c.Load(path)
		done <- LoadResult{Path: path, Image: img, Err: err}
	}()

	go func() {
		select {
		case r := <-done:
			out <- r
		case <-ctx.Done():
			out <- LoadResult{Path: path, Err: ctx.Err()}
		}
	}()

	return out
}

// LoadAll loads every path concurrently and returns the images in the order
// given. Repeated paths are decoded once. All failures are joined into the
// returned error; the slice is nil whenever the error is not.
func (c *ImageCache) LoadAll(ctx context.Context, paths []string) ([]image.Image, error) {
	pending := make(map[string]<-chan LoadResult, len(paths))
	for _, p := range paths {
		if _, ok := pending[p]; !ok {
			pending[p] = c.LoadAsync(ctx, p)
		}
	}

	loaded := make(map[string]image.Image, len(pending))
	var errs []error
	for _, p := range paths {
		if _, ok := loaded[p]; ok {
			continue
		}
		ch, ok := pending[p]
		if !ok {
			continue
		}
		delete(pending, p)
		r := <-ch
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, r.Err))
			continue
		}
		loaded[p] = r.Image
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	out := make([]image.Image, len(paths))
	for i, p := range paths {
		out[i] = loaded[p]
	}
	return out, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear drops every cached image. Loads in progress still complete and
// cache their result.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	clear(c.images)
	c.mu.Unlock()
}

// Evict removes path from the cache. The next Load reads from disk again.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the lower-case format implied by the file extension ("png",
	// "jpeg", "gif", "tiff", "bmp") or "unknown".
	Format string `json:"format"`

	// HasAlpha is set for pixel types that carry an alpha channel.
	// Ingredient images without one cannot produce a silhouette.
	HasAlpha bool `json:"has_alpha"`

	// OpaqueFraction is the share of pixels that count as silhouette (0.0 to 1.0).
	OpaqueFraction float64 `json:"opaque_fraction"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and describes it.
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

	bounds := img.Bounds()
	return &ImageInfo{
		Width:          bounds.Dx(),
		Height:         bounds.Dy(),
		Format:         format,
		HasAlpha:       hasAlphaChannel(img),
		OpaqueFraction: Coverage(img, OpacityLevel).Fraction,
		FileSizeBytes:  stat.Size(),
	}, nil
}

func hasAlphaChannel(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.Paletted, *image.Alpha, *image.Alpha16:
		return true
	}
	return false
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the size of the image at path.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
