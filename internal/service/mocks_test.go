package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"wiki-quiz/internal/domain"
)

type MockArticleExtractor struct {
	mock.Mock
}

func (m *MockArticleExtractor) Extract(ctx context.Context, url string) (*domain.ContentRecord, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentRecord), args.Error(1)
}

func (m *MockArticleExtractor) SearchTopic(ctx context.Context, topic string) (string, error) {
	args := m.Called(ctx, topic)
	return args.String(0), args.Error(1)
}

type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) Generate(ctx context.Context, content *domain.ContentRecord) (*domain.QuizPayload, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizPayload), args.Error(1)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Available() bool {
	return m.Called().Bool(0)
}

func (m *MockQuizRepository) UpsertByURL(ctx context.Context, url, title, summary string, payload *domain.QuizPayload) (string, error) {
	args := m.Called(ctx, url, title, summary, payload)
	return args.String(0), args.Error(1)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (*domain.QuizRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizRecord), args.Error(1)
}

func (m *MockQuizRepository) ListRecent(ctx context.Context, limit int) ([]*domain.QuizRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizRecord), args.Error(1)
}

func (m *MockQuizRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuizRepository) MergeUserAnswers(ctx context.Context, id string, answers map[string]string) (*domain.QuizRecord, error) {
	args := m.Called(ctx, id, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizRecord), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
