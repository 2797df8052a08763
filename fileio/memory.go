package fileio

import (
	"context"
	"slices"
	"sync"
)

// Memory keeps a label vector in process. It copies on read and write.
type Memory struct {
	mu     sync.Mutex
	labels []float64
}

var (
	_ Reader = (*Memory)(nil)
	_ Writer = (*Memory)(nil)
)

// NewMemory returns a Memory holding a copy of labels.
func NewMemory(labels []float64) *Memory {
	return &Memory{labels: slices.Clone(labels)}
}

func (m *Memory) ReadVector(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.labels))
	copy(out, m.labels)
	return out, nil
}

func (m *Memory) WriteVector(ctx context.Context, labels []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels = slices.Clone(labels)
	return nil
}

// Labels returns a copy of the stored vector.
func (m *Memory) Labels() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.labels)
}
