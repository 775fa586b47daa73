package handler

import (
	"github.com/gofiber/fiber/v2"

	"wiki-quiz/internal/config"
	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"
	"wiki-quiz/internal/llm"
)

// StatusHandler reports process health and which backends are configured.
type StatusHandler struct {
	cfg        *config.Config
	repo       domain.QuizRepository
	cache      domain.Cache
	candidates []llm.Candidate
}

func NewStatusHandler(cfg *config.Config, repo domain.QuizRepository, cache domain.Cache, candidates []llm.Candidate) *StatusHandler {
	return &StatusHandler{
		cfg:        cfg,
		repo:       repo,
		cache:      cache,
		candidates: candidates,
	}
}

// Health godoc
// @Summary Liveness and dependency health
// @Tags status
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "not configured",
		Cache:    "not configured",
	}
	if h.repo != nil && h.repo.Available() {
		resp.Database = "connected"
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			resp.Cache = "unreachable"
		} else {
			resp.Cache = "connected"
		}
	}
	return c.JSON(resp)
}

// APIStatus godoc
// @Summary Report configured AI providers and storage
// @Description Shows which credentials are present and the model fallback order. Never exposes key material.
// @Tags status
// @Produce json
// @Success 200 {object} dto.APIStatusResponse
// @Router /api-status [get]
func (h *StatusHandler) APIStatus(c *fiber.Ctx) error {
	resp := dto.APIStatusResponse{
		GeminiConfigured:     h.cfg.Gemini.APIKey != "",
		OpenRouterConfigured: h.cfg.OpenRouter.APIKey != "",
		DatabaseConfigured:   h.repo != nil && h.repo.Available(),
		Candidates:           make([]dto.CandidateStatus, 0, len(h.candidates)),
	}
	for _, cand := range h.candidates {
		resp.Candidates = append(resp.Candidates, dto.CandidateStatus{
			Provider: cand.Provider.Name(),
			Model:    cand.Model,
		})
	}
	return c.JSON(resp)
}
