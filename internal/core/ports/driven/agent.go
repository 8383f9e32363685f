package driven

import (
	"context"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
)

// TabularAgent plans and executes data operations over a frame in answer
// to a natural-language question, returning a textual result.
//
// This is a trust boundary: the agent may interpret or execute whatever it
// decides against user-supplied data. Callers only classify the outcome as
// success or failure; they do not sandbox it.
type TabularAgent interface {
	// Analyze answers the query against the frame.
	Analyze(ctx context.Context, query string, frame *domain.Frame) (string, error)
}
