// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package embedder turns free-text queries into vectors by calling an
// external embedding service.
//
// HTTPClient speaks a minimal JSON protocol that covers both small
// self-hosted sentence-transformer servers and OpenAI-compatible APIs.
// Breaker wraps any Embedder with a circuit breaker and a client-side rate
// limit. Static serves vectors from a lookup table.
package embedder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coursecompass/internal/config"
)

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ErrEmptyEmbedding is returned when the service answered without a vector.
var ErrEmptyEmbedding = errors.New("embedding response contained no vector")

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 512

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("embedding service returned %d: %s", e.StatusCode, e.Body)
}

type embedRequest struct {
	Input string `json:"input"`
	Model string `json:"model,omitempty"`
}

// embedResponse accepts {"embedding": [...]} and {"data": [{"embedding": [...]}]}.
type embedResponse struct {
	Embedding []float64 `json:"embedding"`
	Data      []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// HTTPClient calls an embedding endpoint over HTTP.
type HTTPClient struct {
	url        string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a client for cfg.URL.
func NewHTTPClient(cfg *config.EmbeddingConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		url:        cfg.URL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Embed posts text to the service and returns the vector.
func (c *HTTPClient) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := json.Marshal(embedRequest{Input: text, Model: c.model})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	vec := out.Embedding
	if len(vec) == 0 && len(out.Data) > 0 {
		vec = out.Data[0].Embedding
	}
	if len(vec) == 0 {
		return nil, ErrEmptyEmbedding
	}
	return vec, nil
}
