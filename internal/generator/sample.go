package generator

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"wiki-quiz/internal/domain"
)

// LoadSample reads the bundled sample quiz used when every provider
// candidate fails. A missing or unparsable file is logged and returns
// nil; the service can still run, it just loses the degraded mode.
func LoadSample(path string, logger *zap.Logger) *domain.QuizPayload {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("sample quiz not available, degraded mode disabled",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	var payload domain.QuizPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Warn("sample quiz file does not parse, degraded mode disabled",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	if len(payload.Quiz) == 0 {
		logger.Warn("sample quiz file has no questions, degraded mode disabled",
			zap.String("path", path))
		return nil
	}
	return &payload
}
