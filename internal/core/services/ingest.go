package services

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/calibra-labs/draftsman-cli/internal/chunker"
	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
	"github.com/calibra-labs/draftsman-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// ExtractorRegistry selects a text extractor for a file path, or nil
// when the format is unsupported.
type ExtractorRegistry interface {
	For(path string) driven.TextExtractor
}

// IngestService loads source documents into the vector store.
type IngestService struct {
	extractors ExtractorRegistry
	chunker    *chunker.Chunker
	embedder   driven.EmbeddingService
	store      driven.VectorStore
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	extractors ExtractorRegistry,
	chk *chunker.Chunker,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
) *IngestService {
	return &IngestService{
		extractors: extractors,
		chunker:    chk,
		embedder:   embedder,
		store:      store,
	}
}

// Ingest extracts, chunks, embeds and indexes every supported document
// under dir. Unreadable files are skipped with a warning; the run only
// fails when nothing at all could be ingested.
func (s *IngestService) Ingest(ctx context.Context, dir string) (*driving.IngestSummary, error) {
	logger.Section("Ingestion")
	logger.Info("Source directory: %s", dir)

	documents, err := s.collect(dir)
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("%w: no supported documents under %s", domain.ErrNoDocuments, dir)
	}
	logger.Info("Found %d document(s)", len(documents))

	var chunks []domain.Chunk
	sources := make([]string, 0, len(documents))
	for _, doc := range documents {
		docChunks := s.chunker.Split(doc)
		logger.Debug("%s: %d chunk(s)", doc.Source, len(docChunks))
		chunks = append(chunks, docChunks...)
		sources = append(sources, doc.Source)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	logger.Info("Embedding %d chunk(s) with %s", len(texts), s.embedder.ModelName())
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	now := time.Now().UTC()
	records := make([]domain.Record, len(chunks))
	for i, c := range chunks {
		records[i] = domain.Record{
			Chunk:     c,
			Embedding: vectors[i],
			IndexedAt: now,
		}
	}

	// One batch: either the whole run lands or none of it does.
	if err := s.store.UpsertBatch(ctx, records); err != nil {
		return nil, err
	}

	logger.Info("Indexed %d record(s) from %d document(s)", len(records), len(documents))
	return &driving.IngestSummary{
		Documents: len(documents),
		Chunks:    len(records),
		Sources:   sources,
	}, nil
}

// collect walks dir and extracts every supported document. Files the
// registry has no extractor for are ignored; extraction failures are
// logged and skipped.
func (s *IngestService) collect(dir string) ([]domain.Document, error) {
	var documents []domain.Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		extractor := s.extractors.For(path)
		if extractor == nil {
			logger.Debug("Skipping unsupported file: %s", path)
			return nil
		}

		content, err := extractor.Extract(path)
		if err != nil {
			logger.Warn("Failed to extract %s: %v", path, err)
			return nil
		}
		if strings.TrimSpace(content) == "" {
			logger.Debug("Skipping empty document: %s", path)
			return nil
		}

		documents = append(documents, domain.Document{
			Source:  d.Name(),
			Path:    path,
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	return documents, nil
}
