// Package genai calls the Gemini generateContent REST API. The model is
// treated as an opaque text-completion service: one prompt in, the first
// candidate's text out.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-diettrack-backend/config"
	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/pkg/apperror"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.UpstreamTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.GeminiModel,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL exists for tests pointing at an httptest server.
func NewClientWithBaseURL(cfg *config.Config, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = baseURL
	return c
}

var _ domain.Generator = (*Client)(nil)

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
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", apperror.Unavailable("GEMINI_API_KEY not set", nil)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperror.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", apperror.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperror.Unavailable("generative service unavailable: "+err.Error(), err)
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperror.Unavailable("failed to parse generative response", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("generative service error (status %d)", resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", apperror.Unavailable(msg, nil)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", apperror.Unavailable("empty response from generative service", nil)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
