package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8000"
	defaultEnvironment    = "development"
	defaultOllamaBaseURL  = "http://localhost:11434"
	defaultOllamaTimeout  = 60 * time.Second
	defaultHealthTimeout  = 5 * time.Second
	defaultBackendBurst   = 10
	defaultAgentMaxTokens = 1000
	defaultAgentTemp      = 0.7

	defaultAnalyzerCodeModel    = "codegemma:2b"
	defaultAnalyzerGeneralModel = "phi"
	defaultAgentCodeModel       = "tinyllama"
	defaultAgentReasoningModel  = "ernie-4.5-0.3b"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	ollamaTimeout, err := durationEnv("OLLAMA_TIMEOUT", defaultOllamaTimeout)
	if err != nil {
		return nil, err
	}

	healthTimeout, err := durationEnv("HEALTH_TIMEOUT", defaultHealthTimeout)
	if err != nil {
		return nil, err
	}

	backendRate, err := floatEnv("BACKEND_RATE_LIMIT", 0)
	if err != nil {
		return nil, err
	}

	backendBurst, err := intEnv("BACKEND_RATE_BURST", defaultBackendBurst)
	if err != nil {
		return nil, err
	}

	agentTemp, err := floatEnv("AGENT_TEMPERATURE", defaultAgentTemp)
	if err != nil {
		return nil, err
	}

	agentMaxTokens, err := intEnv("AGENT_MAX_TOKENS", defaultAgentMaxTokens)
	if err != nil {
		return nil, err
	}

	if backendRate < 0 {
		return nil, fmt.Errorf("BACKEND_RATE_LIMIT must not be negative")
	}

	return &Config{
		Port:        stringEnv("PORT", defaultPort),
		Environment: stringEnv("ENVIRONMENT", defaultEnvironment),
		Ollama: OllamaConfig{
			BaseURL:       strings.TrimRight(stringEnv("OLLAMA_BASE_URL", defaultOllamaBaseURL), "/"),
			Timeout:       ollamaTimeout,
			HealthTimeout: healthTimeout,
			RateLimit:     backendRate,
			RateBurst:     backendBurst,
		},
		Analyzer: AnalyzerConfig{
			CodeModel:    stringEnv("ANALYZER_CODE_MODEL", defaultAnalyzerCodeModel),
			GeneralModel: stringEnv("ANALYZER_GENERAL_MODEL", defaultAnalyzerGeneralModel),
		},
		Agents: AgentsConfig{
			CodeModel:      stringEnv("AGENT_CODE_MODEL", defaultAgentCodeModel),
			ReasoningModel: stringEnv("AGENT_REASONING_MODEL", defaultAgentReasoningModel),
			Temperature:    agentTemp,
			MaxTokens:      agentMaxTokens,
		},
		RateLimit:   os.Getenv("RATE_LIMIT"),
		RedisURL:    os.Getenv("REDIS_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return d, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return f, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return n, nil
}
