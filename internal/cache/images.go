package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ErrFailed is returned for a reference that already failed to load; it is
// not retried until Clear.
var ErrFailed = errors.New("image previously failed to load")

// Variant selects how a source image is prepared for drawing.
type Variant int

const (
	// Full is the source scaled down to fit MaxFull on its longest side.
	Full Variant = iota
	// Thumb is a square center crop used by the viewer's thumbnail rail.
	Thumb
)

// Sizes of the prepared variants, in pixels.
const (
	MaxFull   = 1600
	ThumbSize = 72
)

func (v Variant) String() string {
	if v == Thumb {
		return "thumb"
	}
	return "full"
}

// ImageCache provides disk + memory caching for catalog images. References
// are either http(s) URLs, downloaded once into the disk cache, or paths
// resolved against the asset root.
type ImageCache struct {
	assetRoot string
	cacheDir  string
	log       *zap.Logger

	memory  sync.Map // key -> *ebiten.Image
	decoded sync.Map // key -> image.Image
	failed  sync.Map // ref -> error
	loading sync.Map // key -> *loadEntry (in-flight dedup with waiters)
	sources singleflight.Group
	sem     chan struct{}
}

// loadEntry tracks an in-flight load and its waiters. Once finished it
// hands the result straight to late waiters, so none is dropped between the
// loader collecting callbacks and the entry leaving the loading map.
type loadEntry struct {
	mu        sync.Mutex
	done      bool
	img       *ebiten.Image
	callbacks []func(*ebiten.Image)
}

// wait registers cb, or calls it at once when the load already finished.
// Failed loads never call back.
func (e *loadEntry) wait(cb func(*ebiten.Image)) {
	e.mu.Lock()
	if !e.done {
		e.callbacks = append(e.callbacks, cb)
		e.mu.Unlock()
		return
	}
	img := e.img
	e.mu.Unlock()
	if img != nil {
		cb(img)
	}
}

// finish records the result and returns the waiters registered so far.
func (e *loadEntry) finish(img *ebiten.Image) []func(*ebiten.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done = true
	e.img = img
	cbs := e.callbacks
	e.callbacks = nil
	return cbs
}

// NewImageCache creates a cache reading local images from assetRoot and
// keeping downloaded ones under cacheDir.
func NewImageCache(assetRoot, cacheDir string, log *zap.Logger) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image cache dir: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageCache{
		assetRoot: assetRoot,
		cacheDir:  cacheDir,
		log:       log.Named("images"),
		sem:       make(chan struct{}, 6),
	}, nil
}

func key(ref string, v Variant) string { return v.String() + "|" + ref }

// Get returns a ready image, or nil while it is loading or after it failed.
// Callers draw a placeholder for nil.
func (ic *ImageCache) Get(ref string, v Variant) *ebiten.Image {
	if val, ok := ic.memory.Load(key(ref, v)); ok {
		return val.(*ebiten.Image)
	}
	return nil
}

// Failed reports whether ref could not be loaded.
func (ic *ImageCache) Failed(ref string) bool {
	_, ok := ic.failed.Load(ref)
	return ok
}

// Request returns the image if ready and otherwise starts loading it in the
// background. Screens call it every frame for what they draw.
func (ic *ImageCache) Request(ref string, v Variant) *ebiten.Image {
	if img := ic.Get(ref, v); img != nil || ref == "" || ic.Failed(ref) {
		return img
	}
	ic.LoadAsync(ref, v, func(*ebiten.Image) {})
	return nil
}

// LoadAsync starts loading an image in the background.
// The callback is called with the image when ready (may be called from a
// goroutine). It is not called when the load fails.
func (ic *ImageCache) LoadAsync(ref string, v Variant, callback func(*ebiten.Image)) {
	k := key(ref, v)
	if val, ok := ic.memory.Load(k); ok {
		callback(val.(*ebiten.Image))
		return
	}

	entry := &loadEntry{callbacks: []func(*ebiten.Image){callback}}
	if existing, loaded := ic.loading.LoadOrStore(k, entry); loaded {
		existing.(*loadEntry).wait(callback)
		return
	}

	go func() {
		var eimg *ebiten.Image
		if img, err := ic.Decoded(context.Background(), ref, v); err == nil {
			eimg = ebiten.NewImageFromImage(img)
			ic.memory.Store(k, eimg)
		}
		cbs := entry.finish(eimg)
		ic.loading.Delete(k)
		if eimg == nil {
			return
		}
		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

// Decoded returns the prepared variant of ref as a plain image. Loads of the
// same source are shared, so a full image and its thumbnail decode once.
func (ic *ImageCache) Decoded(ctx context.Context, ref string, v Variant) (image.Image, error) {
	k := key(ref, v)
	if val, ok := ic.decoded.Load(k); ok {
		return val.(image.Image), nil
	}
	if val, ok := ic.failed.Load(ref); ok {
		return nil, fmt.Errorf("%w: %v", ErrFailed, val)
	}

	res, err, _ := ic.sources.Do(ref, func() (any, error) {
		select {
		case ic.sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		defer func() { <-ic.sem }()
		return ic.loadSource(ref)
	})
	if err != nil {
		if ctx.Err() == nil {
			ic.failed.Store(ref, err)
			ic.log.Warn("image load failed", zap.String("ref", ref), zap.Error(err))
		}
		return nil, err
	}

	img := prepare(res.(image.Image), v)
	ic.decoded.Store(k, img)
	return img, nil
}

// Preload decodes every reference's variant in parallel, stopping at the
// first context cancellation. Individual load failures are logged, not
// returned.
func (ic *ImageCache) Preload(ctx context.Context, refs []string, v Variant) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cap(ic.sem))
	for _, ref := range refs {
		g.Go(func() error {
			if _, err := ic.Decoded(ctx, ref, v); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}
	return g.Wait()
}

func prepare(src image.Image, v Variant) image.Image {
	switch v {
	case Thumb:
		return imaging.Fill(src, ThumbSize, ThumbSize, imaging.Center, imaging.Lanczos)
	default:
		b := src.Bounds()
		if b.Dx() <= MaxFull && b.Dy() <= MaxFull {
			return src
		}
		return imaging.Fit(src, MaxFull, MaxFull, imaging.Lanczos)
	}
}

// Cover scales and crops img to exactly w×h, keeping the center.
func Cover(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Linear)
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// LocalPath resolves a non-URL reference against the asset root.
func (ic *ImageCache) LocalPath(ref string) string {
	return filepath.Join(ic.assetRoot, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
}

func (ic *ImageCache) loadSource(ref string) (image.Image, error) {
	if ref == "" {
		return nil, errors.New("empty image reference")
	}
	if !isRemote(ref) {
		img, err := imaging.Open(ic.LocalPath(ref))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", ref, err)
		}
		return img, nil
	}
	return ic.download(ref)
}

func (ic *ImageCache) download(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	// Try disk cache first
	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear drops every in-memory image and forgets failures, so the next
// request reloads from disk. Used after a catalog reload.
func (ic *ImageCache) Clear() {
	ic.memory.Clear()
	ic.decoded.Clear()
	ic.failed.Clear()
}

// ClearDisk removes all downloaded images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
