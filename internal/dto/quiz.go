package dto

import (
	"time"

	"wiki-quiz/internal/domain"
)

// CreateQuizRequest represents a quiz generation request in the API.
// Either a full Wikipedia article URL or a free-text topic must be set;
// a topic is resolved to an article via Wikipedia search.
// @Description Request body for generating a quiz
type CreateQuizRequest struct {
	URL   string `json:"url"`
	Topic string `json:"topic"`
}

// SaveResultsRequest carries a user's answers keyed by question index.
// @Description Request body for saving quiz results
type SaveResultsRequest struct {
	UserAnswers map[string]string `json:"user_answers"`
}

// QuizResponse represents a generated or stored quiz in the API response.
// ID and CreatedAt are empty when the quiz was generated without a
// configured database.
// @Description Quiz with its source article metadata
type QuizResponse struct {
	ID          string             `json:"id,omitempty"`
	URL         string             `json:"url"`
	Title       string             `json:"title"`
	Summary     string             `json:"summary"`
	Data        domain.QuizPayload `json:"data"`
	UserAnswers map[string]string  `json:"user_answers,omitempty"`
	CreatedAt   *time.Time         `json:"created_at,omitempty"`
	Saved       bool               `json:"saved"`
}

// QuizListResponse wraps the recent-quizzes listing.
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse reports process liveness and dependency health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// CandidateStatus names one provider/model pair in generation order.
type CandidateStatus struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// APIStatusResponse reports which backends this deployment can reach.
type APIStatusResponse struct {
	GeminiConfigured     bool              `json:"gemini_configured"`
	OpenRouterConfigured bool              `json:"openrouter_configured"`
	DatabaseConfigured   bool              `json:"database_configured"`
	Candidates           []CandidateStatus `json:"candidates"`
}

// QuizResponseFromRecord maps a stored quiz row to its API shape.
func QuizResponseFromRecord(record *domain.QuizRecord) QuizResponse {
	createdAt := record.CreatedAt
	return QuizResponse{
		ID:          record.ID,
		URL:         record.URL,
		Title:       record.Title,
		Summary:     record.Summary,
		Data:        record.Data,
		UserAnswers: record.UserAnswers,
		CreatedAt:   &createdAt,
		Saved:       true,
	}
}
