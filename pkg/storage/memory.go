package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/qdrawlabs/qdraw/pkg/errors"
)

// MemoryStore keeps diagrams in process memory. Contents are lost on
// restart; use it for tests and single-instance deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	diagrams map[uuid.UUID]Diagram
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{diagrams: make(map[uuid.UUID]Diagram)}
}

func (s *MemoryStore) Put(ctx context.Context, d Diagram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagrams[d.ID] = d
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.diagrams[id]
	if !ok {
		return Diagram{}, errors.New(errors.ErrCodeNotFound, "diagram %s not found", id)
	}
	return d, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Diagram, 0, len(s.diagrams))
	for _, d := range s.diagrams {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.diagrams, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
