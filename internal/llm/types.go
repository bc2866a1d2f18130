package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// returned (wrapped) when the backend answers with a non-200 status
	ErrBackendStatus = errors.New("backend returned non-200 status")

	// returned (wrapped) when the backend call exceeds its deadline
	ErrTimeout = errors.New("backend request timed out")
)

// generates text from a prompt
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// lists the models the backend has pulled
type ModelLister interface {
	ListModels(ctx context.Context) ([]Model, error)
}

// everything the services need from an inference backend
type Backend interface {
	Generator
	ModelLister
}

// one text generation call
type GenerateRequest struct {
	Model       string
	Prompt      string
	Temperature float64
	MaxTokens   int // sent as num_predict, omitted when 0
}

type GenerateResponse struct {
	Text            string
	Model           string
	EvalCount       int
	PromptEvalCount int
	Duration        time.Duration
}

type Model struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size,omitempty"`
	ModifiedAt time.Time `json:"modified_at,omitempty"`
}

// non-200 answer from the backend
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend request failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrBackendStatus
}

// wire types of the Ollama REST API

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	EvalCount       int    `json:"eval_count"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	TotalDuration   int64  `json:"total_duration"` // nanoseconds
}

type tagsResponse struct {
	Models []Model `json:"models"`
}
