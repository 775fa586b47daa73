package domain

import "strings"

// Difficulty levels a question may carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// OptionsPerQuestion is the contract for multiple-choice questions.
const OptionsPerQuestion = 4

// Question is a single multiple-choice question. Answer always equals
// one entry of Options exactly once a payload has been normalized.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// QuizPayload is the structured quiz returned by the generator. Title,
// summary, sections and entities are carried through from the
// ContentRecord the quiz was generated from.
type QuizPayload struct {
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Sections      []string   `json:"sections"`
	Entities      Entities   `json:"key_entities"`
	Quiz          []Question `json:"quiz"`
	RelatedTopics []string   `json:"related_topics,omitempty"`
	// Degraded marks payloads whose quiz came from the bundled sample
	// rather than a live model call.
	Degraded bool `json:"degraded,omitempty"`
}

// Normalize cleans a model-produced question in place and reports
// whether it is usable. Whitespace is trimmed, the difficulty is folded
// into the known set, and the answer is matched case-insensitively
// against the options and rewritten to the exact option text.
func (q *Question) Normalize() bool {
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)
	q.Explanation = strings.TrimSpace(q.Explanation)
	for i, opt := range q.Options {
		q.Options[i] = strings.TrimSpace(opt)
	}

	if q.Question == "" || len(q.Options) != OptionsPerQuestion {
		return false
	}

	switch strings.ToLower(q.Difficulty) {
	case DifficultyEasy:
		q.Difficulty = DifficultyEasy
	case DifficultyHard:
		q.Difficulty = DifficultyHard
	default:
		q.Difficulty = DifficultyMedium
	}

	for _, opt := range q.Options {
		if strings.EqualFold(opt, q.Answer) {
			q.Answer = opt
			return true
		}
	}
	return false
}

// NormalizeQuiz filters a parsed question list down to the usable
// questions. It returns the kept questions and the number dropped.
func NormalizeQuiz(questions []Question) ([]Question, int) {
	kept := make([]Question, 0, len(questions))
	for i := range questions {
		if questions[i].Normalize() {
			kept = append(kept, questions[i])
		}
	}
	return kept, len(questions) - len(kept)
}
