// Package pricing wraps the optional external vehicle pricing API. When the
// API is unconfigured or unreachable the orchestrator falls back to the
// retention model, so every error here is advisory.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dealscout/internal/domain"
)

// Config holds pricing API configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a pricing client, or nil when no base URL is configured.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		return nil
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "pricing_api"),
	}
}

type valuationResponse struct {
	EstimatedValue float64 `json:"estimated_value"`
	LowValue       float64 `json:"low_value"`
	HighValue      float64 `json:"high_value"`
}

// FetchValuation queries the pricing API for a value/range triple, retrying
// transient failures with exponential backoff.
func (c *Client) FetchValuation(ctx context.Context, req domain.ValuationRequest) (*domain.ValuationEstimate, error) {
	params := url.Values{}
	params.Set("make", req.Make)
	params.Set("model", req.Model)
	params.Set("year", strconv.Itoa(req.Year))
	params.Set("mileage", strconv.Itoa(req.Mileage))
	params.Set("condition", req.Condition)
	if req.VIN != "" {
		params.Set("vin", req.VIN)
	}
	reqURL := fmt.Sprintf("%s/valuation?%s", c.baseURL, params.Encode())

	var resp *valuationResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, reqURL)
		if err == nil {
			break
		}

		if attempt == c.maxAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return &domain.ValuationEstimate{
		EstimatedValue: resp.EstimatedValue,
		LowValue:       resp.LowValue,
		HighValue:      resp.HighValue,
	}, nil
}

func (c *Client) doRequest(ctx context.Context, url string) (*valuationResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp valuationResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
		if backoff > c.maxBackoff {
			return c.maxBackoff
		}
	}
	return backoff
}
