package driving

import (
	"context"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
)

// AssistantService runs one evaluation cycle against a session: consume a
// pending replay if one exists, dispatch the query through the session's
// mode, and append exactly one interaction to the history on success.
// Failures are surfaced to the caller and append nothing.
type AssistantService interface {
	Evaluate(ctx context.Context, sess *domain.Session, req EvalRequest) (*Outcome, error)
}

// EvalRequest is the input to one evaluation cycle.
type EvalRequest struct {
	// Input is the user's typed query. Ignored when a replay is
	// pending; the replayed question takes its place.
	Input string

	// Frame is the loaded tabular export, required for structured
	// report mode.
	Frame *domain.Frame

	// TopK is the number of chunks to retrieve for Q&A mode.
	// Zero means the answer service default.
	TopK int
}

// Outcome is the user-visible result of a successful evaluation.
type Outcome struct {
	// Mode is the mode the query actually ran under.
	Mode domain.Mode

	// Question is the evaluated query (the replayed one, if any).
	Question string

	// Text is the answer or report text.
	Text string

	// Sources lists source document names used as context, if any.
	Sources []string

	// Inspection holds the store listing for admin mode.
	Inspection *InspectReport

	// Replayed is true when the question came from a pending replay.
	Replayed bool
}
