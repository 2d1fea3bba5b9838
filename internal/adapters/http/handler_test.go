package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/razeenr05/GenVis/internal/adapters/http"
	"github.com/razeenr05/GenVis/internal/adapters/integrations"
	"github.com/razeenr05/GenVis/internal/adapters/llm"
	"github.com/razeenr05/GenVis/internal/adapters/storage/memory"
	"github.com/razeenr05/GenVis/internal/app/activity"
	"github.com/razeenr05/GenVis/internal/app/workflow"
	"github.com/razeenr05/GenVis/internal/domain"
)

// jsonLLM answers every prompt with a fixed fenced JSON object, the way a
// cooperating model would.
type jsonLLM struct {
	content string
}

func (j *jsonLLM) Generate(ctx context.Context, prompt string, maxTokens int) domain.LLMResult {
	return domain.LLMResult{Content: j.content, ReasoningTrace: []string{"step"}}
}

func newTestServer(t *testing.T, client domain.LLMClient) http.Handler {
	t.Helper()

	session := memory.NewSessionStore(time.Now())
	tracker := activity.NewTracker(integrations.DefaultChannel)
	svc := workflow.NewService(client, session, tracker)

	return httpadapter.NewServer(svc, tracker, integrations.NewMockJiraClient(), integrations.NewMockSlackClient(""))
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestLiveness(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	w := doJSON(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "GenVis API is running", body["message"])
}

func TestIdeateSuccess(t *testing.T) {
	client := &jsonLLM{content: "```json\n" +
		`{"pain_points": ["1.", "2.", "3.", "4.", "5."], "product_ideas": []}` +
		"\n```"}
	srv := newTestServer(t, client)

	w := doJSON(t, srv, http.MethodPost, "/api/ideate",
		[]byte(`{"industry": "healthcare", "problem_area": "onboarding"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data["pain_points"], 5)

	// activity reflects the run
	w = doJSON(t, srv, http.MethodGet, "/api/activity", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snap domain.ActivityState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 5, snap.Insights.PainPoints)
	assert.Equal(t, "updated", snap.Insights.Status)
}

func TestIdeateMalformedResponseIsServerError(t *testing.T) {
	// the mock client's content is prose, so extraction yields nothing
	srv := newTestServer(t, llm.NewMockClient())

	w := doJSON(t, srv, http.MethodPost, "/api/ideate",
		[]byte(`{"industry": "fintech", "problem_area": "reconciliation"}`))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "ideation")
}

func TestWorkflowValidation(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "ideate missing industry", path: "/api/ideate", body: `{"problem_area": "x"}`},
		{name: "ideate missing problem area", path: "/api/ideate", body: `{"industry": "x"}`},
		{name: "requirements missing feature", path: "/api/requirements", body: `{"target_persona": "x"}`},
		{name: "report missing sprint", path: "/api/report", body: `{"completed_items": []}`},
		{name: "not json", path: "/api/ideate", body: `industry=x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, srv, http.MethodPost, tt.path, []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestReportSuccess(t *testing.T) {
	client := &jsonLLM{content: `{"executive_summary": "All goals met.", "metrics": {"velocity": 42}}`}
	srv := newTestServer(t, client)

	w := doJSON(t, srv, http.MethodPost, "/api/report",
		[]byte(`{"sprint_name": "Sprint 12", "completed_items": ["a", "b"]}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var snap domain.ActivityState
	w = doJSON(t, srv, http.MethodGet, "/api/activity", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 2, snap.Jira.CompletedItems)
}

func TestJiraPush(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	w := doJSON(t, srv, http.MethodPost, "/api/jira/push",
		[]byte(`[{"title": "story one"}, {"title": "story two"}]`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Success bool                  `json:"success"`
		Data    []domain.CreatedStory `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "GEN-1", body.Data[0].Key)

	var snap domain.ActivityState
	w = doJSON(t, srv, http.MethodGet, "/api/activity", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 2, snap.Jira.NewStories)
	assert.Equal(t, 2, snap.Jira.TotalSynced)
	assert.NotEmpty(t, snap.Jira.LastSync)
}

func TestJiraPushEmptyBatchIsServerError(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	w := doJSON(t, srv, http.MethodPost, "/api/jira/push", []byte(`[]`))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSlackSend(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	w := doJSON(t, srv, http.MethodPost, "/api/slack/send",
		[]byte(`{"executive_summary": "Great sprint.", "metrics": {}}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var snap domain.ActivityState
	w = doJSON(t, srv, http.MethodGet, "/api/activity", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "Great sprint.", snap.Slack.LastSummary)
	assert.NotEmpty(t, snap.Slack.LastPost)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	req := httptest.NewRequest(http.MethodOptions, "/api/ideate", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
