package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"codeberg.org/swarmworks/server/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	generatePath = "/api/generate"
	tagsPath     = "/api/tags"

	defaultTimeout   = 60 * time.Second
	defaultRateBurst = 10

	// cap on how much of an error body is kept in StatusError
	maxErrorBody = 4096
)

// shared transport so every client reuses connections to the backend
var ollamaTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 20,
	IdleConnTimeout:     90 * time.Second,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
}

type OllamaConfig struct {
	BaseURL string
	Timeout time.Duration

	// requests per second, 0 disables limiting
	RateLimit float64
	RateBurst int
}

// talks to an Ollama server over its REST API
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewOllamaClient(cfg OllamaConfig) *OllamaClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if cfg.RateBurst <= 0 {
		cfg.RateBurst = defaultRateBurst
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &OllamaClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: ollamaTransport,
		},
		limiter: rate.NewLimiter(limit, cfg.RateBurst),
	}
}

func (c *OllamaClient) BaseURL() string {
	return c.baseURL
}

// runs one non-streaming completion
func (c *OllamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	resp, err := c.generate(ctx, req)

	metrics.ObserveBackendCall("generate", req.Model, time.Since(start), err)
	if err == nil {
		metrics.AddTokens(req.Model, resp.EvalCount)
	}

	return resp, err
}

func (c *OllamaClient) generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	reqBody := generateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	var result generateResponse
	if err := c.do(ctx, httpReq, &result); err != nil {
		return nil, err
	}

	model := result.Model
	if model == "" {
		model = req.Model
	}

	return &GenerateResponse{
		Text:            result.Response,
		Model:           model,
		EvalCount:       result.EvalCount,
		PromptEvalCount: result.PromptEvalCount,
		Duration:        time.Duration(result.TotalDuration),
	}, nil
}

// lists pulled models, also used as the health check
func (c *OllamaClient) ListModels(ctx context.Context) ([]Model, error) {
	start := time.Now()

	models, err := c.listModels(ctx)

	metrics.ObserveBackendCall("tags", "", time.Since(start), err)

	return models, err
}

func (c *OllamaClient) listModels(ctx context.Context) ([]Model, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tagsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var result tagsResponse
	if err := c.do(ctx, httpReq, &result); err != nil {
		return nil, err
	}

	return result.Models, nil
}

// waits for the limiter, sends the request and decodes a 200 body into out
func (c *OllamaClient) do(ctx context.Context, httpReq *http.Request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return wrapTransportError(fmt.Errorf("rate limiter wait failed: %w", err))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return wrapTransportError(fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return wrapTransportError(fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}

// tags deadline failures with ErrTimeout so handlers can map them to 504
func wrapTransportError(err error) error {
	if IsTimeout(err) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return err
}

// true for deadline or network timeouts
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
