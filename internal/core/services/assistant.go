package services

import (
	"context"
	"fmt"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
	"github.com/calibra-labs/draftsman-cli/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// AssistantService runs evaluation cycles against a session, dispatching
// queries to the mode-specific services.
type AssistantService struct {
	answer  driving.AnswerService
	report  driving.ReportService
	inspect driving.InspectService
}

// NewAssistantService creates a new assistant service.
func NewAssistantService(
	answer driving.AnswerService,
	report driving.ReportService,
	inspect driving.InspectService,
) *AssistantService {
	return &AssistantService{
		answer:  answer,
		report:  report,
		inspect: inspect,
	}
}

// Evaluate runs one evaluation cycle. A pending replay, if any, is
// consumed first and its question and mode override the request. On
// success exactly one interaction is recorded for Q&A and report modes;
// admin inspection is read-only and never enters the history. Failures
// record nothing, and a consumed replay stays consumed.
func (s *AssistantService) Evaluate(ctx context.Context, sess *domain.Session, req driving.EvalRequest) (*driving.Outcome, error) {
	mode := sess.Mode()
	question := req.Input
	replayed := false

	if replay, ok := sess.ConsumeReplay(); ok {
		question = replay.Question
		mode = replay.TargetMode
		replayed = true
		logger.Debug("Replaying %q under mode %s", question, mode)
	}

	outcome := &driving.Outcome{
		Mode:     mode,
		Question: question,
		Replayed: replayed,
	}

	switch mode {
	case domain.ModeUnstructuredQA:
		answer, err := s.answer.Answer(ctx, question, driving.AnswerOptions{
			TopK:   req.TopK,
			Hybrid: sess.HybridEnabled(),
		})
		if err != nil {
			return nil, err
		}
		outcome.Text = answer.Text
		outcome.Sources = answer.SourceNames()
		sess.Record(mode, question, answer.Text)

	case domain.ModeStructuredReport:
		text, err := s.report.Analyze(ctx, question, req.Frame)
		if err != nil {
			return nil, err
		}
		outcome.Text = text
		sess.Record(mode, question, text)

	case domain.ModeAdminInspect:
		report, err := s.inspect.Inspect(ctx)
		if err != nil {
			return nil, err
		}
		outcome.Inspection = report

	default:
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, mode)
	}

	return outcome, nil
}
