package services

import (
	"context"
	"fmt"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
	"github.com/calibra-labs/draftsman-cli/internal/logger"
)

// Ensure InspectService implements the interface.
var _ driving.InspectService = (*InspectService)(nil)

// previewLen caps the chunk text shown per record.
const previewLen = 120

// InspectService exposes raw inspection of the indexed document store.
type InspectService struct {
	store driven.VectorStore
}

// NewInspectService creates a new inspection service.
func NewInspectService(store driven.VectorStore) *InspectService {
	return &InspectService{store: store}
}

// Inspect enumerates every indexed record in insertion order.
func (s *InspectService) Inspect(ctx context.Context) (*driving.InspectReport, error) {
	logger.Section("Store Inspection")

	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyStore
	}
	logger.Info("Store holds %d record(s)", len(records))

	report := &driving.InspectReport{
		Total:   len(records),
		Records: make([]driving.RecordSummary, len(records)),
	}
	for i, rec := range records {
		report.Records[i] = driving.RecordSummary{
			ID:      rec.Chunk.ID,
			Source:  rec.Chunk.Source,
			Preview: preview(rec.Chunk.Content),
		}
	}

	return report, nil
}

// preview truncates content for display, breaking on rune boundaries.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLen {
		return content
	}
	return string(runes[:previewLen]) + "..."
}
