// Package integrations holds the ticketing and messaging collaborators.
// Both are mocked: they answer the way the real systems would, without
// leaving the process. Swapping in real clients means reimplementing the
// domain ports, nothing else.
package integrations

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/razeenr05/GenVis/internal/domain"
	"github.com/razeenr05/GenVis/internal/observability"
)

const jiraProjectKey = "GEN"

// MockJiraClient fabricates created-story records with sequential keys, the
// shape a Jira bulk-create would return.
type MockJiraClient struct {
	mu      sync.Mutex
	nextSeq int
	now     func() time.Time
}

func NewMockJiraClient() *MockJiraClient {
	return &MockJiraClient{
		nextSeq: 1,
		now:     time.Now,
	}
}

// BulkCreateStories implements domain.TicketClient.
func (c *MockJiraClient) BulkCreateStories(ctx context.Context, stories []domain.Payload) ([]domain.CreatedStory, error) {
	if len(stories) == 0 {
		return nil, fmt.Errorf("no stories to create")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	log := observability.LoggerFromContext(ctx)
	createdAt := c.now().UTC().Format(time.RFC3339)

	created := make([]domain.CreatedStory, 0, len(stories))
	for _, story := range stories {
		title, _ := story["title"].(string)
		if title == "" {
			title = "Untitled story"
		}

		key := fmt.Sprintf("%s-%d", jiraProjectKey, c.nextSeq)
		c.nextSeq++

		created = append(created, domain.CreatedStory{
			ID:        uuid.New().String(),
			Key:       key,
			Title:     title,
			Status:    "To Do",
			URL:       fmt.Sprintf("https://genvis.atlassian.net/browse/%s", key),
			CreatedAt: createdAt,
		})
	}

	log.Info("bulk created stories", "count", len(created))
	return created, nil
}
