package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from user-editable files or embed
// defaults in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a
	// sensible default or an error, depending on whether the prompt
	// is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names. The answering templates expect two %s
// placeholders: the context block and the question, in that order.
// Their names match the domain.PromptTemplate constants.
const (
	// PromptAnswerStrict restricts answers to the supplied context.
	PromptAnswerStrict = "answer_strict"

	// PromptAnswerHybrid prefers context with disclosed fallback to
	// general knowledge.
	PromptAnswerHybrid = "answer_hybrid"

	// PromptTabularAnalysis drives the tabular analysis agent. It
	// expects three %s placeholders: column schema, rendered rows,
	// and the question.
	PromptTabularAnalysis = "tabular_analysis"
)
