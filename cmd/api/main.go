// @title AI Wiki Quiz Generator API
// @version 1.0
// @description Generates multiple-choice quizzes from Wikipedia articles using LLM providers with ordered fallback.
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"wiki-quiz/internal/adapter"
	"wiki-quiz/internal/cache"
	"wiki-quiz/internal/config"
	"wiki-quiz/internal/database"
	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/extractor"
	"wiki-quiz/internal/generator"
	"wiki-quiz/internal/handler"
	"wiki-quiz/internal/llm"
	"wiki-quiz/internal/logger"
	"wiki-quiz/internal/middleware"
	"wiki-quiz/internal/repository"
	"wiki-quiz/internal/service"

	_ "wiki-quiz/docs"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

// buildCandidates assembles the provider/model fallback order. Gemini
// models come first when a Google key is present, then OpenRouter models.
func buildCandidates(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) []llm.Candidate {
	var candidates []llm.Candidate

	if cfg.Gemini.APIKey != "" {
		provider, err := llm.NewGeminiProvider(ctx, cfg.Gemini.APIKey)
		if err != nil {
			appLogger.Warn("failed to initialize Gemini provider", zap.Error(err))
		} else {
			for _, model := range cfg.Gemini.Models {
				candidates = append(candidates, llm.Candidate{Provider: provider, Model: model})
			}
		}
	}

	if cfg.OpenRouter.APIKey != "" {
		provider, err := llm.NewOpenRouterProvider(cfg.OpenRouter.APIKey, cfg.OpenRouter.BaseURL)
		if err != nil {
			appLogger.Warn("failed to initialize OpenRouter provider", zap.Error(err))
		} else {
			for _, model := range cfg.OpenRouter.Models {
				candidates = append(candidates, llm.Candidate{Provider: provider, Model: model})
			}
		}
	}

	return candidates
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Database is optional. Without one the service still generates
	// quizzes, it just cannot store or list them.
	var quizRepository domain.QuizRepository = repository.NewNoopQuizRepository()
	if dsn := cfg.GetDSN(); dsn != "" {
		db, err := database.NewPostgresDB(dsn)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := database.RunMigrations(db, "database/migrations"); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		quizRepository = repository.NewQuizDatabaseAdapter(db)
		appLogger.Info("Connected to PostgreSQL")
	} else {
		appLogger.Warn("DATABASE_URL not set, running without persistence")
	}

	// Redis is optional too. Without it every request re-fetches the page.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Failed to connect to Redis, content caching disabled", zap.Error(err))
		} else {
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Connected to Redis")
		}
	}

	candidates := buildCandidates(ctx, cfg, appLogger)
	if len(candidates) == 0 {
		appLogger.Warn("no AI provider credentials set, quiz requests will serve the sample quiz")
	}
	sample := generator.LoadSample(cfg.Generator.SamplePath, appLogger)

	articleExtractor := extractor.NewExtractor(cfg.Extractor, appLogger)
	quizGenerator := generator.NewGenerator(candidates, sample, cfg.Generator.CallTimeout, appLogger)
	quizService := service.NewQuizService(
		articleExtractor, quizGenerator, quizRepository, cacheAdapter, cfg.Redis.ContentTTL, appLogger)

	quizHandler := handler.NewQuizHandler(quizService)
	statusHandler := handler.NewStatusHandler(cfg, quizRepository, cacheAdapter, candidates)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", statusHandler.Health)
	app.Get("/api-status", statusHandler.APIStatus)

	apiGroup := app.Group("/api")
	apiGroup.Post("/quiz", quizHandler.CreateQuiz)
	apiGroup.Get("/quizzes", quizHandler.ListQuizzes)
	apiGroup.Get("/quiz/:id", quizHandler.GetQuiz)
	apiGroup.Delete("/quiz/:id", quizHandler.DeleteQuiz)
	apiGroup.Put("/quiz/:id/save-results", quizHandler.SaveResults)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
