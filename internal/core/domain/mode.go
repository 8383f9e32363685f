package domain

const unknownDescription = "Unknown"

// Mode selects which pipeline evaluates the current query.
type Mode string

// Available evaluation modes. The set is closed; replayed history entries
// carrying labels outside it fall back to the session's current mode.
const (
	// ModeUnstructuredQA answers questions over the ingested document
	// corpus via retrieval-augmented generation.
	ModeUnstructuredQA Mode = "unstructured_qa"

	// ModeStructuredReport answers questions over an uploaded tabular
	// export via the analysis agent.
	ModeStructuredReport Mode = "structured_report"

	// ModeAdminInspect lists the raw contents of the vector store.
	ModeAdminInspect Mode = "admin_inspect"
)

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	switch m {
	case ModeUnstructuredQA, ModeStructuredReport, ModeAdminInspect:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeUnstructuredQA:
		return "Design Q&A (unstructured documents)"
	case ModeStructuredReport:
		return "Manager Reports (structured exports)"
	case ModeAdminInspect:
		return "Admin (database viewer)"
	default:
		return unknownDescription
	}
}

// legacyModeLabels maps mode labels used by earlier releases to current
// identifiers. History entries persist their label at record time, so a
// replay may carry a name the current release no longer uses.
var legacyModeLabels = map[string]Mode{
	"Design Q&A":     ModeUnstructuredQA,
	"Manager Report": ModeStructuredReport,
	"Admin":          ModeAdminInspect,
}

// MapModeLabel translates a stored mode label to a currently valid mode.
// Unknown labels keep the fallback mode unchanged.
func MapModeLabel(label string, fallback Mode) Mode {
	if m := Mode(label); m.IsValid() {
		return m
	}
	if m, ok := legacyModeLabels[label]; ok {
		return m
	}
	return fallback
}
