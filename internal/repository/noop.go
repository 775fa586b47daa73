package repository

import (
	"context"

	"wiki-quiz/internal/domain"
)

// NoopQuizRepository stands in when no database is configured. Quiz
// generation still works; every persistence operation reports the store
// as unavailable.
type NoopQuizRepository struct{}

func NewNoopQuizRepository() domain.QuizRepository {
	return &NoopQuizRepository{}
}

func (n *NoopQuizRepository) Available() bool {
	return false
}

func (n *NoopQuizRepository) UpsertByURL(ctx context.Context, url, title, summary string, payload *domain.QuizPayload) (string, error) {
	return "", domain.NewStoreUnavailableError()
}

func (n *NoopQuizRepository) GetByID(ctx context.Context, id string) (*domain.QuizRecord, error) {
	return nil, domain.NewStoreUnavailableError()
}

func (n *NoopQuizRepository) ListRecent(ctx context.Context, limit int) ([]*domain.QuizRecord, error) {
	return nil, domain.NewStoreUnavailableError()
}

func (n *NoopQuizRepository) DeleteByID(ctx context.Context, id string) error {
	return domain.NewStoreUnavailableError()
}

func (n *NoopQuizRepository) MergeUserAnswers(ctx context.Context, id string, answers map[string]string) (*domain.QuizRecord, error) {
	return nil, domain.NewStoreUnavailableError()
}
