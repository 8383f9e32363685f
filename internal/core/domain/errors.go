package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service cannot be reached.
	// Ingestion and semantic retrieval are impossible without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStoreUnavailable indicates the persisted vector store cannot be
	// opened, typically because ingestion has never been run.
	ErrStoreUnavailable = errors.New("vector store unavailable")

	// ErrStoreWrite indicates an I/O failure while persisting indexed records.
	ErrStoreWrite = errors.New("vector store write failed")

	// ErrEmptyStore indicates the vector store is open but holds zero records.
	// Surfaced as a precondition before admin listing, never caught from
	// deeper layers.
	ErrEmptyStore = errors.New("vector store is empty")

	// ErrRetrievalFailed indicates top-k similarity retrieval failed.
	ErrRetrievalFailed = errors.New("retrieval failed")

	// ErrGenerationFailed indicates the language model was unreachable or
	// returned an error. An unanswered query is never recorded as a
	// successful interaction.
	ErrGenerationFailed = errors.New("answer generation failed")

	// ErrAnalysisFailed indicates the tabular analysis agent failed.
	// The wrapped message carries the underlying reason.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrEmptyFrame indicates a tabular report was requested without a
	// non-empty data frame.
	ErrEmptyFrame = errors.New("data frame is empty")

	// ErrNoDocuments indicates the ingestion source directory held no
	// readable documents. Ingestion exits without touching the store.
	ErrNoDocuments = errors.New("no documents found")
)
