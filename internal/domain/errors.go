package domain

import "fmt"

// MalformedResponseError signals that the model answered but no JSON object
// could be recovered from its output. This is a hard failure: the workflow
// does not retry and session state stays untouched. RawContent is kept for
// diagnostics and is logged, never swallowed.
type MalformedResponseError struct {
	Workflow   Workflow
	RawContent string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("model did not return valid JSON for %s workflow", e.Workflow)
}
