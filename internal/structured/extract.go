// Package structured recovers a JSON object from free-form model output.
//
// Models asked for "a single valid JSON object" still wrap it in prose, code
// fences or tags often enough that a single parse attempt is not viable. The
// extractor runs a fixed, ordered list of candidate strategies and returns
// the first candidate that parses as a JSON object.
package structured

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/razeenr05/GenVis/internal/domain"
)

// Strategy produces candidate JSON strings from raw model output, in
// discovery order. Strategies are pure; all parsing happens in the driver.
type Strategy func(text string) []string

var (
	codeFenceRe = regexp.MustCompile("(?is)```(?:json)?(.*?)```")
	jsonTagRe   = regexp.MustCompile("(?is)<json>(.*?)</json>")
)

// strategies in priority order. The first parseable candidate wins, by
// strategy first, then by discovery order within a strategy. A small nested
// object can therefore be picked over a larger unparsable one; that matches
// the upstream behavior this engine replaces and is intentional.
var strategies = []Strategy{
	wholeText,
	firstCodeFence,
	firstJSONTag,
	braceSpans,
}

// Extract attempts to recover a single JSON object from text. The second
// return value is false when no candidate parses. Extract never panics.
func Extract(text string) (domain.Payload, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	for _, strategy := range strategies {
		for _, candidate := range strategy(text) {
			if payload, ok := tryParse(candidate); ok {
				return payload, true
			}
		}
	}
	return nil, false
}

// tryParse is the only place a candidate is parsed. It requires a JSON
// object; arrays, scalars and JSON null are not payloads.
func tryParse(candidate string) (domain.Payload, bool) {
	var payload domain.Payload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, false
	}
	if payload == nil {
		return nil, false
	}
	return payload, true
}

// wholeText: the trimmed text itself, for the happy path where the model
// obeyed the prompt exactly.
func wholeText(text string) []string {
	return []string{strings.TrimSpace(text)}
}

// firstCodeFence: the content of the first triple-backtick block, with an
// optional json language tag.
func firstCodeFence(text string) []string {
	m := codeFenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return []string{strings.TrimSpace(m[1])}
}

// firstJSONTag: the content of the first <json>...</json> region.
func firstJSONTag(text string) []string {
	m := jsonTagRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return []string{strings.TrimSpace(m[1])}
}

// braceSpans collects every top-level balanced-brace span: each time the
// nesting depth returns to zero the span from the last 0→1 transition to the
// closing brace becomes one candidate.
func braceSpans(text string) []string {
	var spans []string

	start := -1
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				spans = append(spans, text[start:i+1])
				start = -1
			}
		}
	}
	return spans
}
