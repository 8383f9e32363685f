package driven

import (
	"context"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
)

// VectorStore persists indexed records and answers k-nearest-neighbour
// queries by cosine similarity.
type VectorStore interface {
	// UpsertBatch persists records atomically: either the whole batch
	// becomes visible or none of it, so a failed ingestion never leaves
	// a partial corpus behind.
	UpsertBatch(ctx context.Context, records []domain.Record) error

	// Query returns up to k chunks ordered by non-increasing similarity
	// to the given vector. Ties break by insertion order, so identical
	// inputs always produce identical output order.
	Query(ctx context.Context, vector []float32, k int) ([]domain.Retrieved, error)

	// ListAll returns every indexed record in insertion order,
	// for inspection.
	ListAll(ctx context.Context) ([]domain.Record, error)

	// Count returns the number of indexed records.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
