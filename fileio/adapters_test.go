package fileio

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/labelvec/blobstore"
	"github.com/hupe1980/labelvec/resource"
)

func TestFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	labels := []float64{0, 1, -1, 0.25}

	for _, name := range []string{"labels.lbl", "labels.txt", "labels.json", "labels"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			f := NewFile(filepath.Join(dir, name), WithCompression(CompressionZSTD))
			require.NoError(t, f.WriteVector(ctx, labels))

			got, err := f.ReadVector(ctx)
			require.NoError(t, err)
			assert.Equal(t, labels, got)

			// Only the final file remains.
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, name, entries[0].Name())
		})
	}
}

func TestFile_Inspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.lbl")
	require.NoError(t, SaveToFile(context.Background(), path, []float64{1, 2, 3}, WithCompression(CompressionLZ4)))

	info, err := NewFile(path).Inspect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FormatBinary, info.Format)
	assert.Equal(t, 3, info.Count)
	assert.Equal(t, CompressionLZ4, info.Compression)
}

func TestFile_Overwrite(t *testing.T) {
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "labels.lbl"))
	require.NoError(t, f.WriteVector(ctx, []float64{1, 2, 3}))
	require.NoError(t, f.WriteVector(ctx, []float64{4}))

	got, err := f.ReadVector(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, got)
}

func TestFile_Errors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := NewFile(filepath.Join(dir, "missing.lbl")).ReadVector(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// A failed encode leaves no file behind.
	path := filepath.Join(dir, "bad.json")
	err = NewFile(path).WriteVector(ctx, []float64{math.NaN()})
	require.Error(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, NewFile(path).WriteVector(canceled, []float64{1}), context.Canceled)
}

func TestFile_RateLimited(t *testing.T) {
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "labels.lbl"), WithRateLimit(rc))

	labels := make([]float64, 1000)
	require.NoError(t, f.WriteVector(ctx, labels))
	got, err := f.ReadVector(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1000)
}

func TestBlob_RoundTrip(t *testing.T) {
	ctx := context.Background()
	labels := []float64{3, 2, 1}

	stores := map[string]blobstore.BlobStore{
		"memory": blobstore.NewMemoryStore(),
		"local":  blobstore.NewLocalStore(t.TempDir()),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			b := NewBlob(store, "sets/train.lbl", WithCompression(CompressionLZ4))
			assert.Equal(t, "sets/train.lbl", b.Name())
			require.NoError(t, b.WriteVector(ctx, labels))

			got, err := b.ReadVector(ctx)
			require.NoError(t, err)
			assert.Equal(t, labels, got)

			info, err := b.Inspect(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, info.Count)
		})
	}
}

func TestBlob_AbortOnEncodeError(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	err := NewBlob(store, "bad.json").WriteVector(ctx, []float64{math.Inf(-1)})
	require.Error(t, err)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestBlob_NotFound(t *testing.T) {
	_, err := NewBlob(blobstore.NewMemoryStore(), "nope.lbl").ReadVector(context.Background())
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

// streamingStore hides Mappable so the ranged read path is exercised.
type streamingStore struct {
	*blobstore.MemoryStore
}

type streamingBlob struct {
	blobstore.Blob
}

func (s streamingStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	b, err := s.MemoryStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return streamingBlob{b}, nil
}

func TestBlob_StreamingRead(t *testing.T) {
	ctx := context.Background()
	store := streamingStore{blobstore.NewMemoryStore()}
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})

	b := NewBlob(store, "labels.txt", WithRateLimit(rc))
	require.NoError(t, b.WriteVector(ctx, []float64{1.5, -2}))

	got, err := b.ReadVector(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2}, got)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	src := []float64{1, 2}
	m := NewMemory(src)
	src[0] = 9

	got, err := m.ReadVector(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	got[1] = 7
	assert.Equal(t, []float64{1, 2}, m.Labels())

	require.NoError(t, m.WriteVector(ctx, []float64{5}))
	assert.Equal(t, []float64{5}, m.Labels())
}

type countingStore struct {
	*blobstore.MemoryStore
	puts, creates int
}

func (s *countingStore) Put(ctx context.Context, name string, data []byte) error {
	s.puts++
	return s.MemoryStore.Put(ctx, name, data)
}

func (s *countingStore) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	s.creates++
	return s.MemoryStore.Create(ctx, name)
}

func TestBlob_PutOrStream(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: blobstore.NewMemoryStore()}

	small := NewBlob(store, "small.lbl")
	require.NoError(t, small.WriteVector(ctx, []float64{1, 2}))
	assert.Equal(t, 1, store.puts)
	assert.Zero(t, store.creates)

	large := make([]float64, putThreshold/8+1)
	large[len(large)-1] = 7
	big := NewBlob(store, "large.lbl", WithCompression(CompressionZSTD))
	require.NoError(t, big.WriteVector(ctx, large))
	assert.Equal(t, 1, store.creates)

	got, err := big.ReadVector(ctx)
	require.NoError(t, err)
	assert.Equal(t, large, got)

	// A failed streamed write leaves nothing behind.
	large[0] = math.NaN()
	require.Error(t, NewBlob(store, "large.json").WriteVector(ctx, large))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"large.lbl", "small.lbl"}, names)
}

func TestBlob_Delete(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	b := NewBlob(store, "train.lbl")
	require.NoError(t, b.WriteVector(ctx, []float64{1}))

	require.NoError(t, b.Delete(ctx))
	_, err := b.ReadVector(ctx)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	assert.NoError(t, b.Delete(ctx))
}
