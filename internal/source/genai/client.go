// Package genai asks an OpenAI-compatible chat completions endpoint for a
// resellability opinion when the comparables store is too thin. It is a
// secondary, lower-confidence data source; the caller clamps and tags
// whatever comes back.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dealscout/internal/domain"
)

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *slog.Logger
}

// New creates a generative estimator client, or nil when no API key is
// configured.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		return nil
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		logger:  logger.With("source", "genai"),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type resellabilityAnswer struct {
	MedianDaysToSell   int `json:"median_days_to_sell"`
	ResellabilityScore int `json:"resellability_score"`
	PricePercentile    int `json:"price_percentile"`
}

const systemPrompt = "You are an expert used-car market analyst. Respond only with valid JSON."

// EstimateResellability asks the model how quickly the vehicle would resell
// at the given price. The returned values are raw; the caller is responsible
// for clamping and provenance tagging.
func (c *Client) EstimateResellability(ctx context.Context, make, model string, year int, price float64) (*domain.ResellabilityScore, error) {
	prompt := fmt.Sprintf(`Estimate how quickly a %d %s %s priced at $%.0f would resell on a private marketplace.

Respond with JSON containing exactly these fields:
- median_days_to_sell: integer, typical days until sold
- resellability_score: integer 1-10, 10 meaning it sells almost immediately
- price_percentile: integer 0-100, where this price sits among comparable sales

Return ONLY valid JSON, no other text.`, year, make, model, price)

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion")
	}

	var answer resellabilityAnswer
	if err := json.Unmarshal([]byte(stripFences(chatResp.Choices[0].Message.Content)), &answer); err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}

	return &domain.ResellabilityScore{
		MedianDaysToSell:   answer.MedianDaysToSell,
		ResellabilityScore: answer.ResellabilityScore,
		PricePercentile:    answer.PricePercentile,
	}, nil
}

// stripFences removes markdown code fences models sometimes wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
