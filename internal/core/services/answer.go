package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
	"github.com/calibra-labs/draftsman-cli/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

const (
	// DefaultTopK is the number of chunks retrieved per question.
	DefaultTopK = 3

	// answerTemperature keeps generation close to the source material.
	answerTemperature = 0.3
)

// AnswerService answers questions over the ingested document corpus.
type AnswerService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
	llm      driven.LLMService
	prompts  driven.PromptStore
}

// NewAnswerService creates a new answering service.
func NewAnswerService(
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	llm driven.LLMService,
	prompts driven.PromptStore,
) *AnswerService {
	return &AnswerService{
		embedder: embedder,
		store:    store,
		llm:      llm,
		prompts:  prompts,
	}
}

// Answer embeds the question, retrieves the top-k most similar chunks and
// asks the model under the selected prompt policy. An empty store yields
// an empty context block; in strict mode the template then instructs the
// model to refuse.
func (s *AnswerService) Answer(ctx context.Context, question string, opts driving.AnswerOptions) (*domain.Answer, error) {
	logger.Section("Question Answering")

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	template := domain.SelectTemplate(opts.Hybrid)
	logger.Debug("Template: %s, top-k: %d", template, topK)

	tmpl, err := s.prompts.Load(string(template))
	if err != nil {
		return nil, fmt.Errorf("loading prompt %s: %w", template, err)
	}

	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding question: %v", domain.ErrEmbeddingUnavailable, err)
	}

	hits, err := s.store.Query(ctx, vector, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrievalFailed, err)
	}
	logger.Debug("Retrieved %d chunk(s)", len(hits))

	chunks := make([]domain.Chunk, len(hits))
	for i, hit := range hits {
		chunks[i] = hit.Chunk
	}

	prompt := fmt.Sprintf(tmpl, domain.ContextBlock(chunks), question)

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		Temperature: answerTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	return &domain.Answer{
		Text:    strings.TrimSpace(text),
		Sources: chunks,
	}, nil
}
