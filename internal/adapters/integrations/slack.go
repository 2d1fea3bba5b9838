package integrations

import (
	"context"
	"fmt"
	"time"

	"github.com/razeenr05/GenVis/internal/domain"
	"github.com/razeenr05/GenVis/internal/observability"
)

// DefaultChannel is where sprint summaries land.
const DefaultChannel = "#sprint-reports"

// MockSlackClient acknowledges sprint-summary posts the way the Slack API
// would, with a channel and a message timestamp.
type MockSlackClient struct {
	channel string
	now     func() time.Time
}

func NewMockSlackClient(channel string) *MockSlackClient {
	if channel == "" {
		channel = DefaultChannel
	}
	return &MockSlackClient{
		channel: channel,
		now:     time.Now,
	}
}

// SendSprintSummary implements domain.MessengerClient.
func (c *MockSlackClient) SendSprintSummary(ctx context.Context, report domain.Payload) (domain.PostResult, error) {
	if len(report) == 0 {
		return domain.PostResult{}, fmt.Errorf("empty sprint report")
	}

	log := observability.LoggerFromContext(ctx)
	log.Info("posted sprint summary", "channel", c.channel)

	now := c.now()
	return domain.PostResult{
		OK:        true,
		Channel:   c.channel,
		Timestamp: fmt.Sprintf("%d.%06d", now.Unix(), now.Nanosecond()/1000),
	}, nil
}

// ExecutiveSummary pulls the summary text out of a sprint report for
// activity tracking. Missing or non-string values come back empty.
func ExecutiveSummary(report domain.Payload) string {
	summary, _ := report["executive_summary"].(string)
	return summary
}
