package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
)

func seededStore(t *testing.T, embedder *mockEmbedder, contents ...string) *mockStore {
	t.Helper()
	store := &mockStore{}
	ctx := context.Background()

	for i, content := range contents {
		vec, err := embedder.Embed(ctx, content)
		require.NoError(t, err)
		require.NoError(t, store.UpsertBatch(ctx, []domain.Record{{
			Chunk: domain.Chunk{
				ID:      string(rune('a' + i)),
				Source:  "spec.txt",
				Content: content,
			},
			Embedding: vec,
		}}))
	}
	return store
}

func TestAnswerService_AnswerFromContext(t *testing.T) {
	embedder := &mockEmbedder{}
	store := seededStore(t, embedder,
		"Bolt torque spec is 45 Nm.",
		"Washers are zinc plated.",
	)
	llm := &mockLLM{}
	svc := NewAnswerService(embedder, store, llm, mockPrompts{})

	answer, err := svc.Answer(context.Background(), "What is the bolt torque spec?", driving.AnswerOptions{})
	require.NoError(t, err)

	assert.Contains(t, answer.Text, "45 Nm")
	assert.Equal(t, []string{"spec.txt"}, answer.SourceNames())
	assert.Contains(t, llm.lastPrompt, "Strict.")
}

func TestAnswerService_EmptyStoreRefuses(t *testing.T) {
	embedder := &mockEmbedder{}
	svc := NewAnswerService(embedder, &mockStore{}, &mockLLM{}, mockPrompts{})

	answer, err := svc.Answer(context.Background(), "What is the bolt torque spec?", driving.AnswerOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.RefusalSentence, answer.Text)
	assert.Empty(t, answer.Sources)
}

func TestAnswerService_HybridSelectsHybridTemplate(t *testing.T) {
	embedder := &mockEmbedder{}
	store := seededStore(t, embedder, "Bolt torque spec is 45 Nm.")
	llm := &mockLLM{}
	svc := NewAnswerService(embedder, store, llm, mockPrompts{})

	_, err := svc.Answer(context.Background(), "torque?", driving.AnswerOptions{Hybrid: true})
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "Hybrid.")
}

func TestAnswerService_TopKLimitsContext(t *testing.T) {
	embedder := &mockEmbedder{}
	store := seededStore(t, embedder, "one", "two", "three", "four", "five")
	svc := NewAnswerService(embedder, store, &mockLLM{}, mockPrompts{})

	answer, err := svc.Answer(context.Background(), "one two three four five", driving.AnswerOptions{TopK: 2})
	require.NoError(t, err)
	assert.Len(t, answer.Sources, 2)
}

func TestAnswerService_EmptyQuestion(t *testing.T) {
	svc := NewAnswerService(&mockEmbedder{}, &mockStore{}, &mockLLM{}, mockPrompts{})

	_, err := svc.Answer(context.Background(), "   ", driving.AnswerOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnswerService_EmbeddingFailure(t *testing.T) {
	embedder := &mockEmbedder{err: errors.New("model offline")}
	svc := NewAnswerService(embedder, &mockStore{}, &mockLLM{}, mockPrompts{})

	_, err := svc.Answer(context.Background(), "anything", driving.AnswerOptions{})
	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestAnswerService_RetrievalFailure(t *testing.T) {
	store := &mockStore{queryErr: errors.New("disk gone")}
	svc := NewAnswerService(&mockEmbedder{}, store, &mockLLM{}, mockPrompts{})

	_, err := svc.Answer(context.Background(), "anything", driving.AnswerOptions{})
	assert.ErrorIs(t, err, domain.ErrRetrievalFailed)
}

func TestAnswerService_GenerationFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("timeout")}
	svc := NewAnswerService(&mockEmbedder{}, &mockStore{}, llm, mockPrompts{})

	_, err := svc.Answer(context.Background(), "anything", driving.AnswerOptions{})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}
