// Package ollama provides an embedding service backed by a local Ollama
// instance.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

const (
	// DefaultModel is the embedding model used when none is configured.
	DefaultModel = "nomic-embed-text"

	defaultTimeout       = 30 * time.Second
	defaultMaxRetries    = 3
	defaultMaxConcurrent = 3
)

// Ensure Embedder implements the interface.
var _ driven.EmbeddingService = (*Embedder)(nil)

// Embedder generates embeddings via the Ollama API.
type Embedder struct {
	client        *api.Client
	model         string
	timeout       time.Duration
	maxRetries    int
	maxConcurrent int
}

// NewEmbedder creates an embedder talking to the given Ollama host.
// An empty host falls back to OLLAMA_HOST / the Ollama default, an
// empty model falls back to DefaultModel.
func NewEmbedder(host, model string) (*Embedder, error) {
	hostURL := envconfig.Host()
	if host != "" {
		parsed, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("parsing ollama host %q: %w", host, err)
		}
		hostURL = parsed
	}
	if model == "" {
		model = DefaultModel
	}

	return &Embedder{
		client:        api.NewClient(hostURL, http.DefaultClient),
		model:         model,
		timeout:       defaultTimeout,
		maxRetries:    defaultMaxRetries,
		maxConcurrent: defaultMaxConcurrent,
	}, nil
}

// ModelName returns the configured embedding model.
func (e *Embedder) ModelName() string {
	return e.model
}

// Ping checks that the Ollama server is reachable.
func (e *Embedder) Ping(ctx context.Context) error {
	if err := e.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}
	return nil
}

// Embed returns the embedding vector for a single text, retrying with
// linear backoff on transient failures.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		vector, err := e.embed(ctx, text)
		if err == nil {
			return vector, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: after %d retries: %v", domain.ErrEmbeddingUnavailable, e.maxRetries, lastErr)
}

func (e *Embedder) embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Embeddings(ctx, &api.EmbeddingRequest{
		Model:  e.model,
		Prompt: text,
	})
	if err != nil {
		return nil, err
	}

	vector := make([]float32, len(resp.Embedding))
	for i, v := range resp.Embedding {
		vector[i] = float32(v)
	}
	return vector, nil
}

// EmbedBatch embeds texts concurrently, bounded by a small semaphore so
// a big ingestion does not overwhelm the local server. The result slice
// matches the input order; results[i] is the vector for texts[i].
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([][]float32, len(texts))
	sem := make(chan struct{}, e.maxConcurrent)
	errCh := make(chan error, len(texts))

	var wg sync.WaitGroup
	for i := range texts {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			vector, err := e.Embed(ctx, texts[i])
			if err != nil {
				errCh <- fmt.Errorf("embedding text %d: %w", i, err)
				return
			}
			results[i] = vector
		}(i)
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return results, nil
}
