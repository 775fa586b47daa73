package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"
	"wiki-quiz/internal/logger"
	"wiki-quiz/internal/service"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// CreateQuiz godoc
// @Summary Generate a quiz from a Wikipedia article
// @Description Scrapes the article, generates multiple-choice questions, and stores the quiz when a database is configured
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Article URL or topic"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}

	logger.Get().Info("quiz requested",
		zap.String("url", req.URL), zap.String("topic", req.Topic))

	resp, err := h.service.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListQuizzes godoc
// @Summary List recently generated quizzes
// @Description Returns the ten most recently created quizzes, newest first
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	resp, err := h.service.ListRecentQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a stored quiz by ID
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return domain.NewInvalidInputError("quiz id is required")
	}

	resp, err := h.service.GetQuiz(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuiz godoc
// @Summary Delete a stored quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return domain.NewInvalidInputError("quiz id is required")
	}

	if err := h.service.DeleteQuiz(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiz deleted successfully"})
}

// SaveResults godoc
// @Summary Save a user's answers for a quiz
// @Description Stores the submitted answers on the quiz, replacing any previous attempt
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.SaveResultsRequest true "Answers keyed by question index"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/{id}/save-results [put]
func (h *QuizHandler) SaveResults(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return domain.NewInvalidInputError("quiz id is required")
	}

	var req dto.SaveResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}

	resp, err := h.service.SaveResults(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
