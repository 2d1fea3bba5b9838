package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/razeenr05/GenVis/internal/domain"
	"github.com/razeenr05/GenVis/internal/observability"
)

const (
	// requestTimeout bounds the one blocking operation in a workflow call.
	// Exceeding it is treated like any other transport failure.
	requestTimeout = 45 * time.Second

	systemPrompt = "You are GenVis, an expert AI Product Manager."

	defaultReasoningNote = "Model reasoning successful"
)

// NemotronClient talks to NVIDIA's hosted chat-completions endpoint.
//
// Generate never returns an error: missing credentials, transport failures,
// non-2xx statuses and undecodable bodies all degrade to the deterministic
// mock result. A corrupted-but-present answer is for the extractor to judge;
// an absent one is replaced here.
type NemotronClient struct {
	apiKey  string
	baseURL string
	model   string

	httpClient *http.Client
}

// NewNemotronClient creates a client for the given endpoint. An empty apiKey
// is allowed; the client then always answers with the mock result.
func NewNemotronClient(apiKey, baseURL, model string) *NemotronClient {
	return &NemotronClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Wire types for the chat-completions request.
type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// Wire types for the response. Content and reasoning vary by model family
// (plain string, list of blocks, nested object), so both are kept raw here
// and decoded by the normalizer.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message   chatResponseMessage `json:"message"`
	Reasoning json.RawMessage     `json:"reasoning"`
}

type chatResponseMessage struct {
	Content   json.RawMessage `json:"content"`
	Reasoning json.RawMessage `json:"reasoning"`
}

// Generate implements domain.LLMClient.
func (c *NemotronClient) Generate(ctx context.Context, prompt string, maxTokens int) domain.LLMResult {
	log := observability.LoggerFromContext(ctx)

	if c.apiKey == "" {
		log.Warn("no API key configured, falling back to mock response")
		return mockResult(prompt)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.3,
		MaxTokens:      maxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		log.Error("failed to encode chat request", "error", err)
		return mockResult(prompt)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		log.Error("failed to build chat request", "error", err)
		return mockResult(prompt)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("chat completion call failed", "error", err)
		return mockResult(prompt)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Error("chat completion returned non-success status", "status", res.StatusCode)
		return mockResult(prompt)
	}

	var decoded chatResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		log.Error("failed to decode chat response", "error", err)
		return mockResult(prompt)
	}
	if len(decoded.Choices) == 0 {
		log.Error("chat response contained no choices")
		return mockResult(prompt)
	}

	return normalize(decoded.Choices[0])
}

// normalize turns the heterogeneous choice shape into a uniform LLMResult.
func normalize(choice chatChoice) domain.LLMResult {
	content, contentObj := normalizeContent(choice.Message.Content)

	reasoning := normalizeReasoning(choice.Reasoning, choice.Message.Reasoning, contentObj)
	if len(reasoning) == 0 {
		reasoning = []string{defaultReasoningNote}
	}

	return domain.LLMResult{
		Content:        content,
		ReasoningTrace: reasoning,
	}
}

// normalizeContent flattens the content field to text. When the content was
// itself an object it is additionally returned decoded, because the
// reasoning lookup may need to read a field out of it.
func normalizeContent(raw json.RawMessage) (string, map[string]any) {
	if len(raw) == 0 {
		return "", nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strings.TrimSpace(asString), nil
	}

	var asBlocks []any
	if err := json.Unmarshal(raw, &asBlocks); err == nil {
		var parts []string
		for _, entry := range asBlocks {
			switch block := entry.(type) {
			case string:
				parts = append(parts, block)
			case map[string]any:
				kind, _ := block["type"].(string)
				if text, ok := block["text"]; ok && (kind == "output_text" || kind == "text") {
					parts = append(parts, stringify(text))
				} else if inner, ok := block["content"]; ok {
					parts = append(parts, stringify(inner))
				}
			}
		}
		return strings.TrimSpace(strings.Join(parts, "")), nil
	}

	var asObject map[string]any
	if err := json.Unmarshal(raw, &asObject); err == nil {
		// keep the raw JSON as the textual form so the extractor can still
		// parse it downstream
		return strings.TrimSpace(string(raw)), asObject
	}

	return strings.TrimSpace(string(raw)), nil
}

// normalizeReasoning resolves the reasoning trace, looking at the top-level
// choice field first, then the message, then a reasoning key inside the
// content object. Sequences keep only truthy entries, stringified; a bare
// string becomes a one-element trace.
func normalizeReasoning(choiceField, messageField json.RawMessage, contentObj map[string]any) []string {
	for _, raw := range []json.RawMessage{choiceField, messageField} {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}

		var asList []any
		if err := json.Unmarshal(raw, &asList); err == nil {
			if steps := truthySteps(asList); len(steps) > 0 {
				return steps
			}
			continue
		}

		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil && asString != "" {
			return []string{asString}
		}
	}

	if contentObj != nil {
		switch v := contentObj["reasoning"].(type) {
		case []any:
			return truthySteps(v)
		case string:
			return []string{v}
		}
	}

	return nil
}

func truthySteps(entries []any) []string {
	var steps []string
	for _, entry := range entries {
		if isTruthy(entry) {
			steps = append(steps, stringify(entry))
		}
	}
	return steps
}

func isTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	default:
		return true
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
