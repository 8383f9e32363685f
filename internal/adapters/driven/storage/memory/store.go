// Package memory provides an in-memory vector store, used in tests and
// anywhere persistence is not required. Search is the same brute-force
// cosine scan as the SQLite store.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is an in-memory implementation of driven.VectorStore.
type Store struct {
	mu      sync.RWMutex
	records []domain.Record
	byID    map[string]int
}

// NewStore creates an empty in-memory vector store.
func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

// UpsertBatch stores records. The whole batch is applied under one lock,
// so readers never observe a partial batch.
func (s *Store) UpsertBatch(_ context.Context, records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		if rec.IndexedAt.IsZero() {
			rec.IndexedAt = time.Now().UTC()
		}
		if i, ok := s.byID[rec.Chunk.ID]; ok {
			s.records[i] = rec
			continue
		}
		s.byID[rec.Chunk.ID] = len(s.records)
		s.records = append(s.records, rec)
	}
	return nil
}

// Query returns up to k records by non-increasing cosine similarity,
// ties broken by insertion order.
func (s *Store) Query(_ context.Context, vector []float32, k int) ([]domain.Retrieved, error) {
	if k <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		hit   domain.Retrieved
		order int
	}
	candidates := make([]scored, len(s.records))
	for i, rec := range s.records {
		candidates[i] = scored{
			hit: domain.Retrieved{
				Chunk:      rec.Chunk,
				Similarity: cosineSimilarity(vector, rec.Embedding),
			},
			order: i,
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].hit.Similarity != candidates[j].hit.Similarity {
			return candidates[i].hit.Similarity > candidates[j].hit.Similarity
		}
		return candidates[i].order < candidates[j].order
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	results := make([]domain.Retrieved, 0, k)
	for i := 0; i < k; i++ {
		results = append(results, candidates[i].hit)
	}
	return results, nil
}

// ListAll returns every record in insertion order.
func (s *Store) ListAll(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Count returns the number of stored records.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
