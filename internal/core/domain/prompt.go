package domain

import "strings"

// Fixed phrases the prompt templates instruct the model to use. These are
// behavioural contracts the model is asked to follow, not mechanically
// enforced outputs; tests verify them against a deterministic stand-in.
const (
	// RefusalSentence is emitted verbatim in strict mode when the answer
	// is absent from the supplied context.
	RefusalSentence = "I cannot find this in the provided documents."

	// DisclosureSentence prefixes hybrid-mode answers drawn from the
	// model's general knowledge rather than the supplied context.
	DisclosureSentence = "Note: This information is based on general engineering principles, not the uploaded documents."
)

// PromptTemplate names an answering template. The concrete template text is
// loaded through the prompt store, with embedded defaults.
type PromptTemplate string

// Answering templates. Both expect two %s placeholders: the context block
// and the question, in that order.
const (
	// PromptStrict restricts the model to the supplied context only.
	PromptStrict PromptTemplate = "answer_strict"

	// PromptHybrid prefers context but allows disclosed fallback to the
	// model's general knowledge.
	PromptHybrid PromptTemplate = "answer_hybrid"
)

// SelectTemplate maps the hybrid-knowledge flag to an answering template.
// This is the whole of the prompt policy: no other state affects the choice.
func SelectTemplate(hybridEnabled bool) PromptTemplate {
	if hybridEnabled {
		return PromptHybrid
	}
	return PromptStrict
}

// ContextBlock concatenates retrieved chunk texts into a single context
// block, preserving retrieval order.
func ContextBlock(chunks []Chunk) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = c.Content
	}
	return strings.Join(parts, "\n\n")
}
