// Package ollama provides a tabular analysis agent that answers
// questions about a frame by rendering it into an LLM prompt.
package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// maxPromptRows caps how many data rows are rendered into the prompt.
// Larger frames are truncated with a note so the prompt stays inside
// the model's context window.
const maxPromptRows = 200

// Ensure Agent implements the interface.
var _ driven.TabularAgent = (*Agent)(nil)

// Agent analyzes frames with an LLM.
type Agent struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewAgent creates a tabular analysis agent.
func NewAgent(llm driven.LLMService, prompts driven.PromptStore) *Agent {
	return &Agent{llm: llm, prompts: prompts}
}

// Analyze answers the query against the frame. The frame's schema and
// rows are rendered into the analysis prompt verbatim; the model does
// the interpretation.
func (a *Agent) Analyze(ctx context.Context, query string, frame *domain.Frame) (string, error) {
	if frame.Empty() {
		return "", domain.ErrEmptyFrame
	}

	tmpl, err := a.prompts.Load(driven.PromptTabularAnalysis)
	if err != nil {
		return "", fmt.Errorf("loading analysis prompt: %w", err)
	}

	prompt := fmt.Sprintf(tmpl, renderSchema(frame), renderRows(frame), query)

	answer, err := a.llm.Generate(ctx, prompt, driven.GenerateOptions{Temperature: 0})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}
	return strings.TrimSpace(answer), nil
}

func renderSchema(frame *domain.Frame) string {
	return strings.Join(frame.Columns, " | ")
}

func renderRows(frame *domain.Frame) string {
	var sb strings.Builder
	n := len(frame.Rows)
	shown := n
	if shown > maxPromptRows {
		shown = maxPromptRows
	}
	for _, row := range frame.Rows[:shown] {
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString("\n")
	}
	if shown < n {
		fmt.Fprintf(&sb, "... (%d more rows omitted)\n", n-shown)
	}
	return sb.String()
}
