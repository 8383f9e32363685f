package domain

import "time"

// Document represents a source document after text extraction,
// before chunking.
type Document struct {
	// Source is the originating document name (file name).
	Source string

	// Path is the location the text was extracted from.
	Path string

	// Content is the full extracted text.
	Content string
}

// Chunk is a bounded contiguous slice of a source document's text,
// used as the retrieval unit. Chunks are immutable once stored.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Source is the originating document name.
	Source string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the source document.
	Position int

	// Offset is the byte offset of the chunk within the source text.
	Offset int
}

// Record pairs a chunk with its embedding vector for persistence.
// Records are created at ingestion time and read-only thereafter.
type Record struct {
	Chunk Chunk

	// Embedding is the vector representation of the chunk text.
	Embedding []float32

	// IndexedAt is when the record was persisted.
	IndexedAt time.Time
}

// Retrieved is a chunk returned by similarity search, with its score.
type Retrieved struct {
	Chunk Chunk

	// Similarity is the cosine similarity against the query vector.
	Similarity float64
}

// Answer is the result of a retrieval-augmented query.
type Answer struct {
	// Text is the language model's output.
	Text string

	// Sources are the chunks supplied as context, in retrieval order.
	Sources []Chunk
}

// SourceNames returns the distinct source document names of the answer's
// context chunks, preserving retrieval order.
func (a Answer) SourceNames() []string {
	seen := make(map[string]struct{}, len(a.Sources))
	var names []string
	for _, c := range a.Sources {
		if _, ok := seen[c.Source]; ok {
			continue
		}
		seen[c.Source] = struct{}{}
		names = append(names, c.Source)
	}
	return names
}
