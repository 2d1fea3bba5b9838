package integrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razeenr05/GenVis/internal/domain"
)

func TestBulkCreateStories(t *testing.T) {
	client := NewMockJiraClient()

	created, err := client.BulkCreateStories(context.Background(), []domain.Payload{
		{"title": "As a PM I want dashboards"},
		{"description": "no title on this one"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, "GEN-1", created[0].Key)
	assert.Equal(t, "GEN-2", created[1].Key)
	assert.Equal(t, "As a PM I want dashboards", created[0].Title)
	assert.Equal(t, "Untitled story", created[1].Title)
	assert.Equal(t, "To Do", created[0].Status)
	assert.NotEmpty(t, created[0].ID)

	// keys keep counting across calls
	more, err := client.BulkCreateStories(context.Background(), []domain.Payload{{"title": "next"}})
	require.NoError(t, err)
	assert.Equal(t, "GEN-3", more[0].Key)
}

func TestBulkCreateStoriesRejectsEmptyBatch(t *testing.T) {
	_, err := NewMockJiraClient().BulkCreateStories(context.Background(), nil)
	assert.Error(t, err)
}

func TestSendSprintSummary(t *testing.T) {
	client := NewMockSlackClient("")

	res, err := client.SendSprintSummary(context.Background(), domain.Payload{
		"executive_summary": "Shipped the dashboard.",
	})
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.Equal(t, DefaultChannel, res.Channel)
	assert.NotEmpty(t, res.Timestamp)
}

func TestSendSprintSummaryRejectsEmptyReport(t *testing.T) {
	_, err := NewMockSlackClient("").SendSprintSummary(context.Background(), nil)
	assert.Error(t, err)
}

func TestExecutiveSummary(t *testing.T) {
	assert.Equal(t, "hello", ExecutiveSummary(domain.Payload{"executive_summary": "hello"}))
	assert.Empty(t, ExecutiveSummary(domain.Payload{"executive_summary": 42}))
	assert.Empty(t, ExecutiveSummary(nil))
}
