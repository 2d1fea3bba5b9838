// Package activity derives the small dashboard summaries shown alongside
// each workflow and integration call.
package activity

import (
	"sync"
	"time"

	"github.com/razeenr05/GenVis/internal/domain"
)

// summaryLimit caps the stored copy of a posted sprint summary.
const summaryLimit = 200

// Tracker keeps the mutable dashboard state. All mutations take the lock;
// reads get a snapshot copy.
type Tracker struct {
	mu    sync.Mutex
	state domain.ActivityState
	now   func() time.Time
}

func NewTracker(channel string) *Tracker {
	return &Tracker{
		state: domain.ActivityState{
			Jira:     domain.JiraActivity{Status: "connected"},
			Slack:    domain.SlackActivity{Status: "connected", Channel: channel},
			Insights: domain.InsightsActivity{Status: "idle"},
		},
		now: time.Now,
	}
}

// RecordIdeation updates the insights slice from a fresh ideation payload.
func (t *Tracker) RecordIdeation(payload domain.Payload) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Insights.PainPoints = countItems(payload["pain_points"])
	t.state.Insights.ProductIdeas = countItems(payload["product_ideas"])
	t.state.Insights.Status = "updated"
	t.state.Insights.UpdatedAt = t.timestamp()
}

// RecordRequirements updates the insights slice from a requirements payload.
func (t *Tracker) RecordRequirements(payload domain.Payload) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Insights.UserStories = countItems(payload["user_stories"])
	t.state.Insights.Status = "updated"
	t.state.Insights.UpdatedAt = t.timestamp()
}

// RecordReporting records how many completed items the reporting call was
// given. The count comes from the call parameters, not the payload.
func (t *Tracker) RecordReporting(completedItems int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Jira.CompletedItems = completedItems
	t.state.Insights.Status = "updated"
	t.state.Insights.UpdatedAt = t.timestamp()
}

// RecordJiraPush records a bulk story push and bumps the running total.
func (t *Tracker) RecordJiraPush(created int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Jira.NewStories = created
	t.state.Jira.TotalSynced += created
	t.state.Jira.LastSync = t.timestamp()
}

// RecordSlackPost records a sprint-summary post, keeping a truncated copy of
// the summary text for the dashboard.
func (t *Tracker) RecordSlackPost(summary string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if runes := []rune(summary); len(runes) > summaryLimit {
		summary = string(runes[:summaryLimit])
	}
	t.state.Slack.LastSummary = summary
	t.state.Slack.LastPost = t.timestamp()
}

// Snapshot returns a read-only copy of the current state.
func (t *Tracker) Snapshot() domain.ActivityState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

func (t *Tracker) timestamp() string {
	return t.now().UTC().Format(time.RFC3339)
}

// countItems: length for a sequence, 1 for a single mapping, 0 for anything
// absent or falsy.
func countItems(v any) int {
	switch x := v.(type) {
	case []any:
		return len(x)
	case map[string]any:
		return 1
	default:
		return 0
	}
}
