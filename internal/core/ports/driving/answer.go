package driving

import (
	"context"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
)

// AnswerService answers questions over the ingested document corpus.
type AnswerService interface {
	// Answer embeds the question, retrieves the top-k most similar
	// chunks, and asks the language model under the selected prompt
	// policy. The returned answer carries the context chunks used.
	Answer(ctx context.Context, question string, opts AnswerOptions) (*domain.Answer, error)
}

// AnswerOptions configures a single answering call.
type AnswerOptions struct {
	// TopK is the number of chunks to retrieve (default 3).
	TopK int

	// Hybrid allows disclosed fallback to the model's general
	// knowledge when the context is insufficient.
	Hybrid bool
}
