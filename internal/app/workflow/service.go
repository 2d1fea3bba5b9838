// Package workflow runs the three product-manager tasks: build the prompt,
// call the model, extract the structured payload, record the result.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/razeenr05/GenVis/internal/app/activity"
	"github.com/razeenr05/GenVis/internal/domain"
	"github.com/razeenr05/GenVis/internal/observability"
	"github.com/razeenr05/GenVis/internal/structured"
)

type Service struct {
	llm     domain.LLMClient
	session domain.SessionStore
	tracker *activity.Tracker
	now     func() time.Time
}

func NewService(llm domain.LLMClient, session domain.SessionStore, tracker *activity.Tracker) *Service {
	return &Service{
		llm:     llm,
		session: session,
		tracker: tracker,
		now:     time.Now,
	}
}

// Ideate generates pain points, product ideas, personas and a market view
// for an industry and problem area.
func (s *Service) Ideate(ctx context.Context, industry, problemArea string) (domain.Payload, error) {
	prompt := fmt.Sprintf(ideationPromptTemplate, industry, problemArea)

	return s.run(ctx, domain.WorkflowIdeation, prompt, ideationMaxTokens, func(payload domain.Payload) {
		s.tracker.RecordIdeation(payload)
	})
}

// Requirements generates user stories for a feature and target persona.
func (s *Service) Requirements(ctx context.Context, featureName, targetPersona string) (domain.Payload, error) {
	prompt := fmt.Sprintf(requirementsPromptTemplate, featureName, targetPersona)

	return s.run(ctx, domain.WorkflowRequirements, prompt, requirementsMaxTokens, func(payload domain.Payload) {
		s.tracker.RecordRequirements(payload)
	})
}

// Report summarizes a sprint from its completed items.
func (s *Service) Report(ctx context.Context, sprintName string, completedItems []string) (domain.Payload, error) {
	if completedItems == nil {
		completedItems = []string{}
	}
	items, err := json.Marshal(completedItems)
	if err != nil {
		return nil, fmt.Errorf("encoding completed items: %w", err)
	}
	prompt := fmt.Sprintf(reportingPromptTemplate, sprintName, items)

	return s.run(ctx, domain.WorkflowReporting, prompt, reportingMaxTokens, func(payload domain.Payload) {
		s.tracker.RecordReporting(len(completedItems))
	})
}

// run is the shared workflow template: generate, extract, record. There is
// no retry on a malformed response; repeated bad output is an upstream
// problem to surface, not to paper over.
func (s *Service) run(
	ctx context.Context,
	workflow domain.Workflow,
	prompt string,
	maxTokens int,
	onSuccess func(domain.Payload),
) (domain.Payload, error) {
	ctx = observability.WithWorkflow(ctx, string(workflow))
	log := observability.LoggerFromContext(ctx).With("session_id", s.session.ID())
	log.Info("workflow started")

	result := s.llm.Generate(ctx, prompt, maxTokens)
	log.Info("model response received", "reasoning_steps", len(result.ReasoningTrace))

	payload, ok := structured.Extract(result.Content)
	if !ok {
		log.Error("model response was not valid JSON", "raw_content", result.Content)
		return nil, &domain.MalformedResponseError{
			Workflow:   workflow,
			RawContent: result.Content,
		}
	}

	if err := s.session.Record(workflow, payload, s.now()); err != nil {
		log.Error("failed to record workflow result", "error", err)
		return nil, fmt.Errorf("recording %s result: %w", workflow, err)
	}
	onSuccess(payload)

	log.Info("workflow succeeded")
	return payload, nil
}
