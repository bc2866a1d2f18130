package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// manages HTTP requests to the analyzer and agents services
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// an empty endpoint falls back to SWARM_API_ENDPOINT, then localhost
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = os.Getenv(endpointEnv)
	}

	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// runs the selected agents through the orchestrator, raw holds the response body
func (c *Client) Orchestrate(ctx context.Context, req OrchestrateRequest) (*OrchestrateResponse, []byte, error) {
	var result OrchestrateResponse

	raw, err := c.post(ctx, "/orchestrator/analyze", req, &result)
	if err != nil {
		return nil, raw, err
	}

	return &result, raw, nil
}

// sends one analysis task to the analyzer, raw holds the response body
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, []byte, error) {
	var result AnalyzeResponse

	raw, err := c.post(ctx, "/api/ai/analyze", req, &result)
	if err != nil {
		return nil, raw, err
	}

	return &result, raw, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			if errResp.Details != "" {
				return body, fmt.Errorf("%s: %s (%s)", errResp.Error, errResp.Message, errResp.Details)
			}

			return body, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return body, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return body, fmt.Errorf("failed to parse response: %w", err)
	}

	return body, nil
}
