package driving

import "context"

// IngestService loads source documents into the vector store.
type IngestService interface {
	// Ingest extracts, chunks, embeds and indexes every supported
	// document under dir. Re-running appends new records; it does not
	// replace earlier ones. Returns domain.ErrNoDocuments, without
	// touching the store, when dir holds no readable documents.
	Ingest(ctx context.Context, dir string) (*IngestSummary, error)
}

// IngestSummary reports what an ingestion run indexed.
type IngestSummary struct {
	// Documents is the number of source files ingested.
	Documents int

	// Chunks is the number of records written to the store.
	Chunks int

	// Sources lists the ingested file names.
	Sources []string
}
