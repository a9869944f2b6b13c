// Package gemini implements the language-analysis provider contract
// against the Gemini generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zombar/seoanalyzer/internal/models"
	"github.com/zombar/seoanalyzer/internal/seo"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash-latest"
	DefaultTimeout = 60 * time.Second
)

// Client calls the Gemini API to extract keyword/entity/topic candidates.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a Gemini client. The API key is required; baseURL and model
// fall back to the public endpoint and the default model when empty.
func New(apiKey, model, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}, nil
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return "gemini"
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ExtractCandidates prompts the model for keywords, entities, and topics
// with relevance scores. A non-2xx response is a *seo.ProviderError; a 2xx
// response whose body cannot be parsed into the expected shape degrades to
// an empty CandidateSet so the analysis can still complete.
func (c *Client) ExtractCandidates(ctx context.Context, text, contentType string) (*models.CandidateSet, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(text, contentType)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &seo.ProviderError{Provider: "Gemini", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &seo.ProviderError{Provider: "Gemini", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &seo.ProviderError{
			Provider:   "Gemini",
			StatusCode: resp.StatusCode,
			Detail:     string(respBody),
		}
	}

	var envelope generateResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		slog.Warn("failed to parse Gemini response envelope, continuing without keywords", "error", err)
		return &models.CandidateSet{}, nil
	}

	responseText := ""
	if len(envelope.Candidates) > 0 && len(envelope.Candidates[0].Content.Parts) > 0 {
		responseText = envelope.Candidates[0].Content.Parts[0].Text
	}

	set, ok := parseCandidateSet(responseText)
	if !ok {
		slog.Warn("no candidate JSON found in Gemini response, continuing without keywords")
	}
	return set, nil
}

// parseCandidateSet extracts the first JSON object from a text blob (the
// model may wrap it in markdown) and decodes it. On failure it reports
// ok=false and returns an empty set.
func parseCandidateSet(responseText string) (*models.CandidateSet, bool) {
	start := strings.Index(responseText, "{")
	end := strings.LastIndex(responseText, "}")
	if start < 0 || end <= start {
		return &models.CandidateSet{}, false
	}

	var set models.CandidateSet
	if err := json.Unmarshal([]byte(responseText[start:end+1]), &set); err != nil {
		return &models.CandidateSet{}, false
	}
	return &set, true
}

// buildPrompt asks the model for the three candidate categories in a fixed
// JSON shape, naming the content type with underscores spelled out.
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

Content to analyze:
%s`, strings.ReplaceAll(contentType, "_", " "), text)
}
