package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"wiki-quiz/internal/domain"
)

// quizPromptTemplate is the single fixed prompt. The five interpolated
// fields are title, summary, comma-joined sections, JSON-encoded
// entities and the bounded full text.
const quizPromptTemplate = `Based on the following Wikipedia article content, generate a quiz with 5-10 multiple-choice questions. Each question must have exactly 4 options, one correct answer, a short explanation, and a difficulty level (easy, medium, hard). Use only the supplied text; do not rely on outside knowledge. The "answer" field must be an exact string match for one of the options. Vary difficulty across the questions.

Article Title: %s
Summary: %s
Sections: %s
Key Entities: %s
Full Text: %s

Output a single JSON object in exactly the following format, with no surrounding prose:
{
  "quiz": [
    {
      "question": "Question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Correct Option Text",
      "difficulty": "easy/medium/hard",
      "explanation": "Short explanation"
    }
  ],
  "related_topics": ["Topic1", "Topic2", "Topic3"]
}
`

// renderPrompt interpolates a ContentRecord into the prompt template.
func renderPrompt(content *domain.ContentRecord) string {
	entities, err := json.Marshal(content.Entities)
	if err != nil {
		entities = []byte("{}")
	}
	return fmt.Sprintf(quizPromptTemplate,
		content.Title,
		content.Summary,
		strings.Join(content.Sections, ", "),
		string(entities),
		content.FullText,
	)
}
