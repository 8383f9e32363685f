package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The same service instance (and therefore the same model configuration)
// must embed both ingestion chunks and query text: retrieval similarity is
// meaningless when the two sides come from different models. Embeddings
// are deterministic for identical text within one model configuration; no
// guarantee holds across model versions.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts.
	// More efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error
}
