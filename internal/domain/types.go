package domain

import "time"

// Workflow identifies one of the supported product-manager tasks.
type Workflow string

const (
	WorkflowIdeation     Workflow = "ideation"
	WorkflowRequirements Workflow = "requirements"
	WorkflowReporting    Workflow = "reporting"
)

// Payload is the JSON object recovered from the model's free-text output.
// Its shape is a prompt-level contract per workflow; the core does not
// validate it beyond "it parses as a JSON object".
type Payload map[string]any

// LLMResult is the normalized output of a single model call.
type LLMResult struct {
	Content        string
	ReasoningTrace []string
}

type Timestamp = time.Time
