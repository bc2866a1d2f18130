package config

import "time"

// process-wide settings shared by the analyzer and agents services
type Config struct {
	Port        string
	Environment string

	Ollama   OllamaConfig
	Analyzer AnalyzerConfig
	Agents   AgentsConfig

	// inbound limit in ulule format ("60-M"), empty disables limiting
	RateLimit string

	// optional backing stores
	RedisURL    string
	DatabaseURL string
}

// inference backend connection settings
type OllamaConfig struct {
	BaseURL       string
	Timeout       time.Duration
	HealthTimeout time.Duration

	// outbound requests per second, 0 means unlimited
	RateLimit float64
	RateBurst int
}

// model roles of the single-endpoint service
type AnalyzerConfig struct {
	CodeModel    string // review, test, suggest
	GeneralModel string // everything else
}

// model roles and generation options of the six-agent service
type AgentsConfig struct {
	CodeModel      string // code-review, documentation
	ReasoningModel string // test-generation, performance, security, llm-judge
	Temperature    float64
	MaxTokens      int
}

// true when running with ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// flags for the swarmctl orchestrate subcommand
type OrchestrateFlags struct {
	File     string
	Language string
	Agents   []string
	Context  string
	Raw      bool
}

// flags for the swarmctl analyze subcommand
type AnalyzeFlags struct {
	File string
	Task string
	Raw  bool
}
