package domain

import "context"

// LLMClient defines how the core application talks to a hosted model.
//
// Generate never fails: any transport or decoding problem is absorbed by the
// client, which substitutes a deterministic mock result instead. A degraded
// answer is acceptable; an error from this layer is not part of the contract.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, maxTokens int) LLMResult
}

// SessionStore holds the process-lifetime record of workflow results.
type SessionStore interface {
	// ID returns the session identifier created once at process start.
	ID() string
	// Record stores a successful workflow result: it replaces the latest
	// payload for the workflow and appends to the history.
	Record(workflow Workflow, payload Payload, at Timestamp) error
	// Latest returns the most recent payload for a workflow, if any.
	Latest(workflow Workflow) (Payload, bool)
	// History returns the append-only log of all results, in call order.
	History() []HistoryEntry
}

// TicketClient is the ticketing collaborator (Jira in the product).
type TicketClient interface {
	BulkCreateStories(ctx context.Context, stories []Payload) ([]CreatedStory, error)
}

// MessengerClient is the messaging collaborator (Slack in the product).
type MessengerClient interface {
	SendSprintSummary(ctx context.Context, report Payload) (PostResult, error)
}
