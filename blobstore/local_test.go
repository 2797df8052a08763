package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	ctx := context.Background()

	data := []byte("0.5\n1\n-1\n2.25\n")

	w, err := store.Create(ctx, "train/labels.txt")
	require.NoError(t, err)
	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	// Not visible before Close.
	_, err = os.Stat(filepath.Join(dir, "train", "labels.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, "train/labels.txt")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 2)
	n, err = blob.ReadAt(ctx, buf, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "1\n", string(buf))

	rc, err := blob.ReadRange(ctx, 6, 100)
	require.NoError(t, err)
	rest, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "-1\n2.25\n", string(rest))

	m, ok := blob.(Mappable)
	require.True(t, ok)
	b, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, b)
}

func TestLocalStore_Abort(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	ctx := context.Background()

	w, err := store.Create(ctx, "aborted.bin")
	require.NoError(t, err)
	_, err = w.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, w.Abort())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file must be removed")
}

func TestLocalStore_PutListDelete(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "b.bin", []byte{1}))
	require.NoError(t, store.Put(ctx, "a.bin", []byte{2}))
	require.NoError(t, store.Put(ctx, "other/c.bin", []byte{3}))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bin", "b.bin", "other/c.bin"}, names)

	names, err = store.List(ctx, "other/")
	require.NoError(t, err)
	assert.Equal(t, []string{"other/c.bin"}, names)

	require.NoError(t, store.Delete(ctx, "a.bin"))
	require.NoError(t, store.Delete(ctx, "a.bin"))

	_, err = store.Open(ctx, "a.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_MissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "nope"))
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_InvalidName(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	_, err := store.Open(ctx, "../escape")
	assert.Error(t, err)
	_, err = store.Create(ctx, "")
	assert.Error(t, err)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Create(ctx, "x.bin")
	assert.ErrorIs(t, err, context.Canceled)
}
