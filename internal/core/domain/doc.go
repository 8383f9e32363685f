// Package domain contains the core business types for the Draftsman
// assistant: documents and chunks, evaluation modes, prompt policy,
// tabular frames, and the per-session history/replay state machine.
// It has no dependencies on adapters or external services.
package domain
