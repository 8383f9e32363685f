package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// mockEmbedder produces deterministic vectors from text so similar texts
// (sharing words) land close together.
type mockEmbedder struct {
	err error
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	vec := make([]float32, 8)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%8]++
	}
	return vec, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (m *mockEmbedder) ModelName() string            { return "mock-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

var contextBlockRe = regexp.MustCompile(`(?s)<context>(.*)</context>`)

// mockLLM is a deterministic stand-in for the model: it obeys the strict
// policy literally, refusing when the context block is empty and echoing
// the context otherwise.
type mockLLM struct {
	err        error
	lastPrompt string
	reply      string // when set, returned verbatim
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	if m.reply != "" {
		return m.reply, nil
	}

	match := contextBlockRe.FindStringSubmatch(prompt)
	if match == nil || strings.TrimSpace(match[1]) == "" {
		return domain.RefusalSentence, nil
	}
	return "According to the documents: " + strings.TrimSpace(match[1]), nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }

// mockPrompts serves the same templates the file store embeds by default.
type mockPrompts struct{}

func (mockPrompts) Load(name string) (string, error) {
	switch name {
	case driven.PromptAnswerStrict:
		return "Strict.\n<context>%s</context>\nQuestion: %s", nil
	case driven.PromptAnswerHybrid:
		return "Hybrid.\n<context>%s</context>\nQuestion: %s", nil
	case driven.PromptTabularAnalysis:
		return "Columns: %s\nRows:\n%s\nQuestion: %s", nil
	}
	return "", fmt.Errorf("unknown prompt %q", name)
}

func (mockPrompts) Reload() {}

// mockStore is an in-memory vector store with scriptable failures.
type mockStore struct {
	mu       sync.Mutex
	records  []domain.Record
	queryErr error
	writeErr error
	listErr  error
}

func (m *mockStore) UpsertBatch(_ context.Context, records []domain.Record) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		if rec.IndexedAt.IsZero() {
			rec.IndexedAt = time.Now()
		}
		m.records = append(m.records, rec)
	}
	return nil
}

func (m *mockStore) Query(_ context.Context, vector []float32, k int) ([]domain.Retrieved, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	hits := make([]domain.Retrieved, 0, len(m.records))
	for _, rec := range m.records {
		hits = append(hits, domain.Retrieved{
			Chunk:      rec.Chunk,
			Similarity: dot(vector, rec.Embedding),
		})
	}
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].Similarity > hits[i].Similarity {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

func (m *mockStore) ListAll(_ context.Context) ([]domain.Record, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockStore) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), nil
}

func (m *mockStore) Close() error { return nil }

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// mockAgent is a scriptable tabular agent.
type mockAgent struct {
	reply     string
	err       error
	lastQuery string
}

func (m *mockAgent) Analyze(_ context.Context, query string, frame *domain.Frame) (string, error) {
	m.lastQuery = query
	if m.err != nil {
		return "", m.err
	}
	if frame.Empty() {
		return "", domain.ErrEmptyFrame
	}
	return m.reply, nil
}
