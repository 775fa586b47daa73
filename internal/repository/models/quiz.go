package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wiki-quiz/internal/domain"
)

// QuizData stores the full generated quiz payload as a JSONB column.
type QuizData domain.QuizPayload

// Value implements the driver.Valuer interface
func (d QuizData) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(domain.QuizPayload(d))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (d *QuizData) Scan(value interface{}) error {
	bytesToParse, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("QuizData Scan: %w", err)
	}
	if bytesToParse == nil {
		*d = QuizData{}
		return nil
	}
	return json.Unmarshal(bytesToParse, (*domain.QuizPayload)(d))
}

// AnswerMap stores per-question user answers as a JSONB column.
type AnswerMap map[string]string

// Value implements the driver.Valuer interface
func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (m *AnswerMap) Scan(value interface{}) error {
	bytesToParse, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("AnswerMap Scan: %w", err)
	}
	if bytesToParse == nil {
		*m = AnswerMap{}
		return nil
	}
	return json.Unmarshal(bytesToParse, (*map[string]string)(m))
}

func jsonBytes(value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 || string(v) == "null" {
			return nil, nil
		}
		return v, nil
	case string:
		if v == "" || v == "null" {
			return nil, nil
		}
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported type " + fmt.Sprintf("%T", value))
	}
}

// Quiz is the database row for a stored quiz.
type Quiz struct {
	ID          string    `db:"id"`
	URL         string    `db:"url"`
	Title       string    `db:"title"`
	Summary     string    `db:"summary"`
	Data        QuizData  `db:"data"`
	UserAnswers AnswerMap `db:"user_answers"`
	CreatedAt   time.Time `db:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
