package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// Result is the outcome of a moderation check
type Result struct {
	Flagged    bool
	Categories []string
}

// Client checks user-submitted text against the OpenAI moderation API
// before it reaches storage. Calls run through a circuit breaker like the
// payment provider's: checks fail closed while the API is degraded.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	cfg     models.ModerationConfig
	enabled bool
}

type moderationRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged    bool            `json:"flagged"`
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}

// NewClient creates a new moderation client. When moderation is disabled in
// config every check passes without a network call.
func NewClient(cfg models.ModerationConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "moderation",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				logger.String("circuit", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})

	return &Client{
		http:    httpClient,
		breaker: breaker,
		cfg:     cfg,
		enabled: cfg.Enabled,
	}
}

// Check submits text for moderation and reports whether it was flagged
func (c *Client) Check(ctx context.Context, text string) (*Result, error) {
	if !c.enabled || text == "" {
		return &Result{Flagged: false}, nil
	}

	var resp moderationResponse
	_, err := c.breaker.Execute(func() (interface{}, error) {
		httpResp, err := c.http.R().
			SetContext(ctx).
			SetBody(moderationRequest{Model: c.cfg.Model, Input: text}).
			SetResult(&resp).
			Post("/v1/moderations")
		if err != nil {
			return nil, fmt.Errorf("moderation request failed: %w", err)
		}
		if httpResp.IsError() {
			return nil, fmt.Errorf("moderation request failed with status %d", httpResp.StatusCode())
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("moderation response contained no results")
	}

	result := &Result{Flagged: resp.Results[0].Flagged}
	for category, flagged := range resp.Results[0].Categories {
		if flagged {
			result.Categories = append(result.Categories, category)
		}
	}

	return result, nil
}
