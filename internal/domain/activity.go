package domain

// ActivityState is the dashboard view of recent agent and integration
// activity. Timestamps are UTC, RFC 3339.
type ActivityState struct {
	Jira     JiraActivity     `json:"jira"`
	Slack    SlackActivity    `json:"slack"`
	Insights InsightsActivity `json:"insights"`
}

type JiraActivity struct {
	Status         string `json:"status"`
	LastSync       string `json:"last_sync"`
	NewStories     int    `json:"new_stories"`
	TotalSynced    int    `json:"total_synced"`
	CompletedItems int    `json:"completed_items"`
}

type SlackActivity struct {
	Status      string `json:"status"`
	Channel     string `json:"channel"`
	LastPost    string `json:"last_post"`
	LastSummary string `json:"last_summary"`
}

type InsightsActivity struct {
	Status       string `json:"status"`
	UpdatedAt    string `json:"updated_at"`
	PainPoints   int    `json:"pain_points"`
	ProductIdeas int    `json:"product_ideas"`
	UserStories  int    `json:"user_stories"`
}

// CreatedStory is one record returned by the ticketing collaborator.
type CreatedStory struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

// PostResult is the messaging collaborator's acknowledgement.
type PostResult struct {
	OK        bool   `json:"ok"`
	Channel   string `json:"channel"`
	Timestamp string `json:"ts"`
}
