package driving

import (
	"context"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
)

// ReportService answers questions over an uploaded tabular export by
// delegating to the analysis agent.
type ReportService interface {
	// Analyze validates the frame and forwards the query to the agent.
	// Agent failures come back as domain.ErrAnalysisFailed with the
	// underlying reason; they never panic the caller.
	Analyze(ctx context.Context, query string, frame *domain.Frame) (string, error)
}
