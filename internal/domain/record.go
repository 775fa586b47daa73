package domain

import "time"

// QuizRecord is the persisted form of a generated quiz, one row per
// distinct source URL. UserAnswers maps question-index strings to the
// option the user picked; it is cleared whenever the quiz for a URL is
// regenerated.
type QuizRecord struct {
	ID          string
	URL         string
	Title       string
	Summary     string
	Data        QuizPayload
	UserAnswers map[string]string
	CreatedAt   time.Time
}
