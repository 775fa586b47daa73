package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"wiki-quiz/internal/domain"
)

// modelQuiz is the JSON shape models are asked to emit.
type modelQuiz struct {
	Quiz          []domain.Question `json:"quiz"`
	RelatedTopics []string          `json:"related_topics"`
}

// parseQuizText turns a raw model completion into a modelQuiz. Markdown
// code fences are stripped first; if the stripped text does not parse,
// the largest brace-delimited substring is tried before giving up.
func parseQuizText(text string) (*modelQuiz, error) {
	content := stripCodeFences(text)

	var parsed modelQuiz
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		embedded, ok := largestBraceSpan(content)
		if !ok {
			return nil, fmt.Errorf("completion is not valid JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(embedded), &parsed); err != nil {
			return nil, fmt.Errorf("embedded JSON object does not parse: %w", err)
		}
	}

	if parsed.Quiz == nil {
		return nil, fmt.Errorf("completion has no quiz field")
	}
	return &parsed, nil
}

// stripCodeFences removes a leading ```/```json marker and a trailing
// ``` marker, the wrappers chat models habitually add around JSON.
func stripCodeFences(text string) string {
	content := strings.TrimSpace(text)
	if strings.HasPrefix(content, "```json") {
		content = content[len("```json"):]
	} else if strings.HasPrefix(content, "```") {
		content = content[len("```"):]
	}
	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-len("```")]
	}
	return strings.TrimSpace(content)
}

// largestBraceSpan returns the substring from the first '{' to the last
// '}' in content.
func largestBraceSpan(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}
