package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
	"github.com/calibra-labs/draftsman-cli/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService answers questions over an uploaded tabular export by
// delegating to the analysis agent.
type ReportService struct {
	agent driven.TabularAgent
}

// NewReportService creates a new report service.
func NewReportService(agent driven.TabularAgent) *ReportService {
	return &ReportService{agent: agent}
}

// Analyze validates the frame and forwards the query to the agent.
func (s *ReportService) Analyze(ctx context.Context, query string, frame *domain.Frame) (string, error) {
	logger.Section("Tabular Analysis")

	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if frame.Empty() {
		return "", fmt.Errorf("%w: no tabular data loaded", domain.ErrEmptyFrame)
	}
	logger.Debug("Frame %s: %d column(s), %d row(s)", frame.Name, len(frame.Columns), len(frame.Rows))

	result, err := s.agent.Analyze(ctx, query, frame)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisFailed) || errors.Is(err, domain.ErrEmptyFrame) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	return result, nil
}
