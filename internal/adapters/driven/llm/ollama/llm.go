// Package ollama provides a text generation service backed by a local
// Ollama instance.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "llama3.2"

// Ensure Client implements the interface.
var _ driven.LLMService = (*Client)(nil)

// Client generates text via the Ollama API.
type Client struct {
	client *api.Client
	model  string
}

// NewClient creates a generation client talking to the given Ollama
// host. An empty host falls back to OLLAMA_HOST / the Ollama default,
// an empty model falls back to DefaultModel.
func NewClient(host, model string) (*Client, error) {
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

	return &Client{
		client: api.NewClient(hostURL, http.DefaultClient),
		model:  model,
	}, nil
}

// ModelName returns the configured generation model.
func (c *Client) ModelName() string {
	return c.model
}

// Ping checks that the Ollama server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return nil
}

// Generate produces a completion for the prompt. Streaming responses
// are accumulated and returned as one string.
func (c *Client) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	options := map[string]any{
		"temperature": opts.Temperature,
	}
	if opts.MaxTokens > 0 {
		options["num_predict"] = opts.MaxTokens
	}

	req := api.GenerateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Options: options,
	}

	var out strings.Builder
	err := c.client.Generate(ctx, &req, func(resp api.GenerateResponse) error {
		_, err := out.WriteString(resp.Response)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	return out.String(), nil
}
