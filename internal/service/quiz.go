package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"wiki-quiz/internal/cache"
	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"
)

// RecentQuizLimit caps the /api/quizzes listing.
const RecentQuizLimit = 10

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)
	ListRecentQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
	DeleteQuiz(ctx context.Context, id string) error
	SaveResults(ctx context.Context, id string, req *dto.SaveResultsRequest) (*dto.QuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	extractor  domain.ArticleExtractor
	generator  domain.QuizGenerator
	repo       domain.QuizRepository
	cache      domain.Cache
	contentTTL time.Duration
	logger     *zap.Logger
	inflight   singleflight.Group
}

// NewQuizService creates a new instance of quizService. cache may be nil
// when no Redis is configured; extraction then always hits Wikipedia.
func NewQuizService(
	extractor domain.ArticleExtractor,
	generator domain.QuizGenerator,
	repo domain.QuizRepository,
	contentCache domain.Cache,
	contentTTL time.Duration,
	logger *zap.Logger,
) QuizService {
	return &quizService{
		extractor:  extractor,
		generator:  generator,
		repo:       repo,
		cache:      contentCache,
		contentTTL: contentTTL,
		logger:     logger,
	}
}

// CreateQuiz implements QuizService
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	articleURL, err := s.resolveURL(ctx, req)
	if err != nil {
		return nil, err
	}

	content, err := s.extractContent(ctx, articleURL)
	if err != nil {
		return nil, err
	}

	payload, err := s.generator.Generate(ctx, content)
	if err != nil {
		return nil, err
	}

	resp := &dto.QuizResponse{
		URL:     articleURL,
		Title:   payload.Title,
		Summary: payload.Summary,
		Data:    *payload,
	}

	// Persistence is best effort. A quiz that cannot be saved is still
	// returned to the caller.
	if s.repo.Available() {
		id, err := s.repo.UpsertByURL(ctx, articleURL, payload.Title, payload.Summary, payload)
		if err != nil {
			s.logger.Warn("failed to save generated quiz",
				zap.String("url", articleURL), zap.Error(err))
		} else {
			now := time.Now().UTC()
			resp.ID = id
			resp.CreatedAt = &now
			resp.Saved = true
		}
	}

	return resp, nil
}

// resolveURL validates the request and turns a topic into an article URL.
func (s *quizService) resolveURL(ctx context.Context, req *dto.CreateQuizRequest) (string, error) {
	if req == nil {
		return "", domain.NewInvalidInputError("request body is required")
	}

	articleURL := strings.TrimSpace(req.URL)
	topic := strings.TrimSpace(req.Topic)

	switch {
	case articleURL != "":
		if !strings.Contains(articleURL, "wikipedia.org") {
			return "", domain.NewInvalidInputError("url must be a wikipedia.org article")
		}
		return articleURL, nil
	case topic != "":
		resolved, err := s.extractor.SearchTopic(ctx, topic)
		if err != nil {
			return "", err
		}
		return resolved, nil
	default:
		return "", domain.NewInvalidInputError("either url or topic is required")
	}
}

// extractContent returns article content for the URL, consulting the
// cache first. Concurrent requests for the same URL share one extraction.
func (s *quizService) extractContent(ctx context.Context, articleURL string) (*domain.ContentRecord, error) {
	key := cache.ContentKey(articleURL)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var content domain.ContentRecord
			if err := json.Unmarshal([]byte(cached), &content); err == nil {
				return &content, nil
			}
			s.logger.Warn("discarding unparsable cached content", zap.String("url", articleURL))
			if err := s.cache.Delete(ctx, key); err != nil {
				s.logger.Warn("failed to evict cache entry", zap.String("key", key), zap.Error(err))
			}
		} else if err != domain.ErrCacheMiss {
			s.logger.Warn("content cache read failed", zap.String("url", articleURL), zap.Error(err))
		}
	}

	result, err, _ := s.inflight.Do(articleURL, func() (interface{}, error) {
		content, err := s.extractor.Extract(ctx, articleURL)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if data, err := json.Marshal(content); err == nil {
				if err := s.cache.Set(ctx, key, string(data), s.contentTTL); err != nil {
					s.logger.Warn("content cache write failed", zap.String("url", articleURL), zap.Error(err))
				}
			}
		}
		return content, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.ContentRecord), nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.QuizResponseFromRecord(record)
	return &resp, nil
}

// ListRecentQuizzes implements QuizService
func (s *quizService) ListRecentQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	records, err := s.repo.ListRecent(ctx, RecentQuizLimit)
	if err != nil {
		return nil, err
	}

	quizzes := make([]dto.QuizResponse, 0, len(records))
	for _, record := range records {
		quizzes = append(quizzes, dto.QuizResponseFromRecord(record))
	}
	return &dto.QuizListResponse{Quizzes: quizzes}, nil
}

// DeleteQuiz implements QuizService
func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// SaveResults implements QuizService
func (s *quizService) SaveResults(ctx context.Context, id string, req *dto.SaveResultsRequest) (*dto.QuizResponse, error) {
	if req == nil || len(req.UserAnswers) == 0 {
		return nil, domain.NewInvalidInputError("user_answers is required")
	}

	record, err := s.repo.MergeUserAnswers(ctx, id, req.UserAnswers)
	if err != nil {
		return nil, err
	}
	resp := dto.QuizResponseFromRecord(record)
	return &resp, nil
}
