package cache

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newCache(t *testing.T) (*ImageCache, string) {
	t.Helper()
	root := t.TempDir()
	ic, err := NewImageCache(root, filepath.Join(t.TempDir(), "img"), nil)
	require.NoError(t, err)
	return ic, root
}

func TestDecodedLocalVariants(t *testing.T) {
	ic, root := newCache(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "F1.png"), pngBytes(t, 200, 300), 0o644))

	full, err := ic.Decoded(context.Background(), "/images/F1.png", Full)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 300), full.Bounds().Size())

	thumb, err := ic.Decoded(context.Background(), "/images/F1.png", Thumb)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(ThumbSize, ThumbSize), thumb.Bounds().Size())
}

func TestDecodedRemembersFailures(t *testing.T) {
	ic, _ := newCache(t)

	_, err := ic.Decoded(context.Background(), "/missing.png", Full)
	require.Error(t, err)
	assert.True(t, ic.Failed("/missing.png"))

	_, err = ic.Decoded(context.Background(), "/missing.png", Thumb)
	assert.ErrorIs(t, err, ErrFailed)

	ic.Clear()
	assert.False(t, ic.Failed("/missing.png"))
}

func TestDecodedRemoteUsesDiskCache(t *testing.T) {
	body := pngBytes(t, 40, 20)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	ic, _ := newCache(t)
	url := srv.URL + "/look.png"

	_, err := ic.Decoded(context.Background(), url, Full)
	require.NoError(t, err)
	_, err = ic.Decoded(context.Background(), url, Thumb)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	_, err = os.Stat(ic.diskPath(url))
	assert.NoError(t, err)
}

func TestDecodedRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	ic, _ := newCache(t)
	_, err := ic.Decoded(context.Background(), srv.URL+"/gone.png", Full)
	assert.ErrorContains(t, err, "404")
}

func TestPreload(t *testing.T) {
	ic, root := newCache(t)
	for _, name := range []string{"a.png", "b.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), pngBytes(t, 10, 10), 0o644))
	}

	err := ic.Preload(context.Background(), []string{"/a.png", "/b.png", "/nope.png"}, Thumb)
	require.NoError(t, err)
	assert.True(t, ic.Failed("/nope.png"))

	_, ok := ic.decoded.Load(key("/a.png", Thumb))
	assert.True(t, ok)
}

func TestPrepareFullScalesLargeImages(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3200, 1600))
	out := prepare(src, Full)
	assert.Equal(t, image.Pt(1600, 800), out.Bounds().Size())
}

func TestCover(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 400, 100))
	assert.Equal(t, image.Pt(50, 80), Cover(src, 50, 80).Bounds().Size())
	assert.Equal(t, src, Cover(src, 0, 10))
}

func TestLoadEntryLateWaiterIsCalledBack(t *testing.T) {
	img := new(ebiten.Image)
	e := &loadEntry{}

	var early, late *ebiten.Image
	e.wait(func(got *ebiten.Image) { early = got })
	cbs := e.finish(img)
	require.Len(t, cbs, 1)
	for _, cb := range cbs {
		cb(img)
	}
	assert.Same(t, img, early)

	e.wait(func(got *ebiten.Image) { late = got })
	assert.Same(t, img, late, "waiter arriving after finish gets the image directly")
}

func TestLoadEntryFailedLoadSkipsWaiters(t *testing.T) {
	e := &loadEntry{}
	called := false
	e.wait(func(*ebiten.Image) { called = true })
	assert.Len(t, e.finish(nil), 1)
	e.wait(func(*ebiten.Image) { called = true })
	assert.False(t, called)
}
