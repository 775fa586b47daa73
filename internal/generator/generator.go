package generator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/llm"
)

// Generator produces a quiz from extracted article content by walking an
// ordered list of provider/model candidates until one returns a usable
// quiz. When every candidate fails it falls back to the bundled sample
// quiz, if one was loaded.
type Generator struct {
	candidates  []llm.Candidate
	sample      *domain.QuizPayload
	callTimeout time.Duration
	logger      *zap.Logger
}

func NewGenerator(candidates []llm.Candidate, sample *domain.QuizPayload, callTimeout time.Duration, logger *zap.Logger) *Generator {
	if callTimeout <= 0 {
		callTimeout = 60 * time.Second
	}
	return &Generator{
		candidates:  candidates,
		sample:      sample,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// HasCandidates reports whether at least one provider/model pair is configured.
func (g *Generator) HasCandidates() bool {
	return len(g.candidates) > 0
}

// Candidates returns the configured candidate list for status reporting.
func (g *Generator) Candidates() []llm.Candidate {
	return g.candidates
}

// Generate tries each candidate in order and returns the first quiz that
// survives validation. Failed candidates are logged and skipped.
func (g *Generator) Generate(ctx context.Context, content *domain.ContentRecord) (*domain.QuizPayload, error) {
	if len(g.candidates) == 0 {
		if g.sample != nil {
			g.logger.Warn("no provider candidates configured, serving sample quiz")
			return g.degradedPayload(content), nil
		}
		return nil, domain.NewConfigError(
			"no LLM provider configured: set GOOGLE_API_KEY (or GEMINI_API_KEY) or OPENROUTER_API_KEY")
	}

	prompt := renderPrompt(content)

	var lastErr error
	for _, cand := range g.candidates {
		payload, err := g.tryCandidate(ctx, cand, prompt, content)
		if err != nil {
			lastErr = err
			g.logger.Warn("quiz candidate failed",
				zap.String("provider", cand.Provider.Name()),
				zap.String("model", cand.Model),
				zap.Error(err))
			if ctx.Err() != nil {
				return nil, domain.NewGenerationError("quiz generation cancelled", ctx.Err())
			}
			continue
		}
		g.logger.Info("quiz generated",
			zap.String("provider", cand.Provider.Name()),
			zap.String("model", cand.Model),
			zap.Int("questions", len(payload.Quiz)))
		return payload, nil
	}

	if g.sample != nil {
		g.logger.Warn("all quiz candidates failed, serving sample quiz", zap.Error(lastErr))
		return g.degradedPayload(content), nil
	}
	return nil, exhaustedError(lastErr)
}

func (g *Generator) tryCandidate(ctx context.Context, cand llm.Candidate, prompt string, content *domain.ContentRecord) (*domain.QuizPayload, error) {
	text, err := g.call(ctx, cand, prompt, true)
	if err != nil {
		// Some models reject JSON response mode outright; retry once
		// in plain text and rely on the parser to dig the object out.
		if llm.KindOf(err) == llm.FailureBadRequest {
			g.logger.Debug("retrying candidate without JSON mode",
				zap.String("provider", cand.Provider.Name()),
				zap.String("model", cand.Model))
			text, err = g.call(ctx, cand, prompt, false)
		}
		if err != nil {
			return nil, err
		}
	}

	parsed, err := parseQuizText(text)
	if err != nil {
		return nil, err
	}

	questions, dropped := domain.NormalizeQuiz(parsed.Quiz)
	if dropped > 0 {
		g.logger.Warn("dropped malformed questions",
			zap.String("model", cand.Model), zap.Int("dropped", dropped))
	}
	if len(questions) == 0 {
		return nil, domain.NewGenerationError("model returned no usable questions", nil)
	}

	return &domain.QuizPayload{
		Title:         content.Title,
		Summary:       content.Summary,
		Sections:      content.Sections,
		Entities:      content.Entities,
		Quiz:          questions,
		RelatedTopics: parsed.RelatedTopics,
	}, nil
}

func (g *Generator) call(ctx context.Context, cand llm.Candidate, prompt string, jsonMode bool) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()
	return cand.Provider.Generate(callCtx, cand.Model, prompt, jsonMode)
}

// degradedPayload overlays the live article's metadata on the sample
// quiz so the response still describes the requested page.
func (g *Generator) degradedPayload(content *domain.ContentRecord) *domain.QuizPayload {
	payload := *g.sample
	payload.Title = content.Title
	payload.Summary = content.Summary
	payload.Sections = content.Sections
	payload.Entities = content.Entities
	payload.Degraded = true
	return &payload
}

// exhaustedError maps the last candidate failure to user-facing guidance.
func exhaustedError(lastErr error) error {
	switch llm.KindOf(lastErr) {
	case llm.FailureQuota:
		return domain.NewGenerationError(
			"all AI models are rate limited, try again in a few minutes", lastErr)
	case llm.FailureUnsupportedModel, llm.FailureTransport:
		return domain.NewGenerationError(
			"AI providers are currently unavailable, try again later", lastErr)
	default:
		return domain.NewGenerationError(
			"quiz generation failed on every configured model", lastErr)
	}
}
