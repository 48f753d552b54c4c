package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond, zaptest.NewLogger(t))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	updated := sampleTOML + `
[[archive]]
id = "a2"
title = "Look 02"
image = "/images/F2.png"
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case u := <-w.Updates():
		require.NoError(t, u.Err)
		assert.Len(t, u.Catalog.Archive, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherReportsInvalidCatalog(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("[[looks]]\nid = \"x\"\n"), 0o644))

	select {
	case u := <-w.Updates():
		assert.ErrorIs(t, u.Err, ErrMissingCTA)
		assert.Nil(t, u.Catalog)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)
	w.Stop()

	assert.Zero(t, w.Reloads())
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "catalog.toml"), 0, nil)
	require.NoError(t, err)
	w.Stop()
	w.Stop()
}
