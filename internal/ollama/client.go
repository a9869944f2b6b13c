// Package ollama implements the language-analysis provider contract
// against a local Ollama instance, for running the pipeline without a
// hosted API key.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/zombar/seoanalyzer/internal/models"
	"github.com/zombar/seoanalyzer/internal/seo"
)

const (
	DefaultModel   = "gpt-oss:20b"
	DefaultTimeout = 360 * time.Second
)

// Client wraps the Ollama API client.
type Client struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// New creates an Ollama client. URL and model fall back to the local
// daemon and the default model when empty.
func New(ollamaURL, model string) (*Client, error) {
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}
	if model == "" {
		model = DefaultModel
	}

	baseURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &Client{
		client:  api.NewClient(baseURL, http.DefaultClient),
		model:   model,
		timeout: DefaultTimeout,
	}, nil
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return "ollama"
}

// ExtractCandidates prompts the local model for keywords, entities, and
// topics. Generation failures are *seo.ProviderError; a response without a
// parseable JSON object degrades to an empty CandidateSet.
func (c *Client) ExtractCandidates(ctx context.Context, text, contentType string) (*models.CandidateSet, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: buildPrompt(text, contentType),
		Stream: new(bool), // false
	}

	var response strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		response.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return nil, &seo.ProviderError{Provider: "Ollama", Err: fmt.Errorf("generation failed: %w", err)}
	}

	result := strings.TrimSpace(response.String())

	// Try to find JSON object in response
	start := strings.Index(result, "{")
	end := strings.LastIndex(result, "}")
	if start < 0 || end <= start {
		slog.Warn("no JSON object found in Ollama response, continuing without keywords")
		return &models.CandidateSet{}, nil
	}

	var set models.CandidateSet
	if err := json.Unmarshal([]byte(result[start:end+1]), &set); err != nil {
		slog.Warn("failed to parse Ollama candidate JSON, continuing without keywords", "error", err)
		return &models.CandidateSet{}, nil
	}

	return &set, nil
}

// buildPrompt mirrors the Gemini prompt so both providers return the same
// candidate shape.
func buildPrompt(text, contentType string) string {
	return fmt.Sprintf(`Analyze the following %s content for SEO and provide keywords, entities, and topics. Return your analysis in the following JSON format:

{
  "keywords": [
    {
      "text": "keyword phrase",
      "relevanceScore": 0.8,
      "searchVolume": "high/medium/low",
      "difficulty": "high/medium/low"
    }
  ],
  "entities": [
    {
      "text": "entity name",
      "relevanceScore": 0.9,
      "type": "PERSON/ORGANIZATION/LOCATION/OTHER"
    }
  ],
  "topics": [
    {
      "text": "topic name",
      "relevanceScore": 0.7
    }
  ]
}

Return ONLY the JSON object, nothing else.

Content to analyze:
%s`, strings.ReplaceAll(contentType, "_", " "), text)
}
