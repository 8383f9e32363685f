package driving

import "context"

// InspectService exposes raw inspection of the indexed document store.
type InspectService interface {
	// Inspect enumerates every indexed record. Returns
	// domain.ErrEmptyStore when the store holds zero records.
	Inspect(ctx context.Context) (*InspectReport, error)
}

// InspectReport is a full enumeration of the vector store contents.
type InspectReport struct {
	// Total is the number of indexed records.
	Total int

	// Records summarises each record in insertion order.
	Records []RecordSummary
}

// RecordSummary is one indexed record, trimmed for display.
type RecordSummary struct {
	// ID is the record identifier.
	ID string

	// Source is the originating document name.
	Source string

	// Preview is a truncated view of the chunk text.
	Preview string
}
