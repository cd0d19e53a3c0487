// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remote calls an HTTP food-classification service and adapts its
// answers into detection candidates. Failures collapse into three typed
// errors so the pipeline can fall back without inspecting transport
// details.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pbolem/nutriguide/internal/httputil"
	"github.com/pbolem/nutriguide/pkg/types"
)

// Classification failure modes. The pipeline treats all three the same
// way (fall back to the local matcher) but logs them differently.
var (
	ErrUnavailable = errors.New("remote classifier unavailable")
	ErrRateLimited = errors.New("remote classifier rate limited")
	ErrTimeout     = errors.New("remote classifier timed out")
)

const defaultTotalBudget = 3 * time.Second

// Client is a remote classifier adapter. The zero Endpoint disables it.
type Client struct {
	cfg  types.RemoteClassifierConfig
	http *http.Client
}

// NewClient builds a Client from cfg.
func NewClient(cfg types.RemoteClassifierConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c.cfg.Endpoint != ""
}

// label/score pairs in the inference-API response shape.
type scoredLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends the encoded image to the classifier and returns the
// top-scoring label as a candidate. The whole call, retries included, is
// bounded by the configured total budget (default 3 s); on expiry the
// error is ErrTimeout. Service and transport failures map to
// ErrUnavailable, rate limiting that survives the retry budget to
// ErrRateLimited.
func (c *Client) Classify(ctx context.Context, imageData []byte) (types.DetectionCandidate, error) {
	if !c.Enabled() {
		return types.DetectionCandidate{}, fmt.Errorf("%w: no endpoint configured", ErrUnavailable)
	}

	budget := c.cfg.TotalBudget
	if budget <= 0 {
		budget = defaultTotalBudget
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(imageData))
	if err != nil {
		return types.DetectionCandidate{}, fmt.Errorf("creating classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		if ctx.Err() != nil {
			return types.DetectionCandidate{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return types.DetectionCandidate{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return types.DetectionCandidate{}, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return types.DetectionCandidate{}, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	var labels []scoredLabel
	if err := json.NewDecoder(resp.Body).Decode(&labels); err != nil {
		return types.DetectionCandidate{}, fmt.Errorf("%w: parsing response: %v", ErrUnavailable, err)
	}
	if len(labels) == 0 {
		return types.DetectionCandidate{}, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	best := labels[0]
	for _, l := range labels[1:] {
		if l.Score > best.Score {
			best = l
		}
	}

	return types.DetectionCandidate{
		Label:      NormalizeLabel(best.Label),
		Confidence: clamp01(best.Score),
		Source:     types.SourceRemote,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
