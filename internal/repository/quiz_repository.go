package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/repository/models"
	"wiki-quiz/internal/util"
)

const quizColumns = `id, url, title, summary, data, user_answers, created_at`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// Available implements domain.QuizRepository
func (a *QuizDatabaseAdapter) Available() bool {
	return true
}

// UpsertByURL implements domain.QuizRepository. A quiz regenerated for a
// URL that already has a row keeps the row's id but replaces its content,
// resets created_at, and clears any recorded user answers.
func (a *QuizDatabaseAdapter) UpsertByURL(ctx context.Context, url, title, summary string, payload *domain.QuizPayload) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("cannot save nil quiz payload")
	}

	query := `INSERT INTO quizzes (id, url, title, summary, data, user_answers, created_at)
	VALUES ($1, $2, $3, $4, $5, '{}', $6)
	ON CONFLICT (url) DO UPDATE SET
		title = EXCLUDED.title,
		summary = EXCLUDED.summary,
		data = EXCLUDED.data,
		user_answers = '{}',
		created_at = EXCLUDED.created_at
	RETURNING id`

	var id string
	err := a.db.QueryRowxContext(ctx, query,
		util.NewULID(), url, title, summary, models.QuizData(*payload), time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to upsert quiz for %s: %w", url, err)
	}
	return id, nil
}

// GetByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.QuizRecord, error) {
	var row models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`

	err := a.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewQuizNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainRecord(&row), nil
}

// ListRecent implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListRecent(ctx context.Context, limit int) ([]*domain.QuizRecord, error) {
	var rows []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes ORDER BY created_at DESC LIMIT $1`

	if err := a.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent quizzes: %w", err)
	}

	records := make([]*domain.QuizRecord, 0, len(rows))
	for i := range rows {
		records = append(records, toDomainRecord(&rows[i]))
	}
	return records, nil
}

// DeleteByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeleteByID(ctx context.Context, id string) error {
	result, err := a.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for quiz %s: %w", id, err)
	}
	if affected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

// MergeUserAnswers implements domain.QuizRepository. The submitted map
// replaces whatever was stored; a re-taken quiz does not keep answers
// from the previous attempt.
func (a *QuizDatabaseAdapter) MergeUserAnswers(ctx context.Context, id string, answers map[string]string) (*domain.QuizRecord, error) {
	query := `UPDATE quizzes
	SET user_answers = $2
	WHERE id = $1
	RETURNING ` + quizColumns

	var row models.Quiz
	err := a.db.GetContext(ctx, &row, query, id, models.AnswerMap(answers))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewQuizNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to merge answers for quiz %s: %w", id, err)
	}
	return toDomainRecord(&row), nil
}

func toDomainRecord(row *models.Quiz) *domain.QuizRecord {
	return &domain.QuizRecord{
		ID:          row.ID,
		URL:         row.URL,
		Title:       row.Title,
		Summary:     row.Summary,
		Data:        domain.QuizPayload(row.Data),
		UserAnswers: map[string]string(row.UserAnswers),
		CreatedAt:   row.CreatedAt,
	}
}
