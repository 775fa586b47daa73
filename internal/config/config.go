package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the service reads at startup.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Extractor  ExtractorConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Generator  GeneratorConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// DSN is a postgres connection URL. Empty means the service runs
	// without persistence.
	DSN string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	// ContentTTL bounds how long extracted article content is reused
	// before the page is fetched again.
	ContentTTL time.Duration
}

type ExtractorConfig struct {
	MaxAttempts    int
	BackoffBase    time.Duration
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	FullTextLimit  int
	RawTextLimit   int
	UserAgent      string
}

type GeminiConfig struct {
	APIKey string
	Models []string
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Models  []string
}

type GeneratorConfig struct {
	// CallTimeout is the total budget for a single model call.
	CallTimeout time.Duration
	SamplePath  string
}

type LoggerConfig struct {
	Level string
	Env   string
}

// Defaults applied when the config file leaves a key unset. Model lists
// are ordered newest/fastest first; the generator tries them in order.
var (
	defaultGeminiModels = []string{
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	}
	defaultOpenRouterModels = []string{
		"google/gemini-2.0-flash-exp:free",
		"meta-llama/llama-3.3-70b-instruct:free",
	}
)

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("redis.content_ttl", 3600)
	viper.SetDefault("extractor.max_attempts", 3)
	viper.SetDefault("extractor.backoff_base", 2)
	viper.SetDefault("extractor.connect_timeout", 10)
	viper.SetDefault("extractor.request_timeout", 30)
	viper.SetDefault("extractor.full_text_limit", 10000)
	viper.SetDefault("extractor.raw_text_limit", 6000)
	viper.SetDefault("extractor.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	viper.SetDefault("gemini.models", defaultGeminiModels)
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.models", defaultOpenRouterModels)
	viper.SetDefault("generator.call_timeout", 60)
	viper.SetDefault("generator.sample_path", "sample_data/sample_output.json")
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; env vars and defaults carry a
		// container deployment on their own.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Database: DatabaseConfig{
			DSN: viper.GetString("database.dsn"),
		},
		Redis: RedisConfig{
			Address:    viper.GetString("redis.address"),
			Password:   viper.GetString("redis.password"),
			DB:         viper.GetInt("redis.db"),
			ContentTTL: viper.GetDuration("redis.content_ttl") * time.Second,
		},
		Extractor: ExtractorConfig{
			MaxAttempts:    viper.GetInt("extractor.max_attempts"),
			BackoffBase:    viper.GetDuration("extractor.backoff_base") * time.Second,
			ConnectTimeout: viper.GetDuration("extractor.connect_timeout") * time.Second,
			RequestTimeout: viper.GetDuration("extractor.request_timeout") * time.Second,
			FullTextLimit:  viper.GetInt("extractor.full_text_limit"),
			RawTextLimit:   viper.GetInt("extractor.raw_text_limit"),
			UserAgent:      viper.GetString("extractor.user_agent"),
		},
		Gemini: GeminiConfig{
			APIKey: viper.GetString("gemini.api_key"),
			Models: viper.GetStringSlice("gemini.models"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  viper.GetString("openrouter.api_key"),
			BaseURL: viper.GetString("openrouter.base_url"),
			Models:  viper.GetStringSlice("openrouter.models"),
		},
		Generator: GeneratorConfig{
			CallTimeout: viper.GetDuration("generator.call_timeout") * time.Second,
			SamplePath:  viper.GetString("generator.sample_path"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   os.Getenv("ENV"),
		},
	}

	// Conventional env var names win over the config file.
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		config.Database.DSN = dsn
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		config.Redis.Address = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		config.OpenRouter.APIKey = key
	}

	return config, nil
}

// GetDSN returns the postgres connection URL.
func (c *Config) GetDSN() string {
	return c.Database.DSN
}

// HasProvider reports whether at least one generation credential is set.
func (c *Config) HasProvider() bool {
	return c.Gemini.APIKey != "" || c.OpenRouter.APIKey != ""
}
