package health

// body of GET /health on the analyzer
type AnalyzerResponse struct {
	Status string   `json:"status"`
	Models []string `json:"models,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// body of GET /health on the agents service
type AgentsResponse struct {
	Status           string   `json:"status"`
	OllamaConnection string   `json:"ollama_connection"`
	AvailableModels  []string `json:"available_models,omitempty"`
	Error            string   `json:"error,omitempty"`
}

const (
	connectionOK    = "ok"
	connectionError = "error"

	// analyzer wording when the backend cannot be reached at all
	notResponding = "Ollama not responding"
)
