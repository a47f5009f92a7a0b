// Package supabase talks to the hosted Supabase project: GoTrue for
// identity, PostgREST for the relational tables. The hosted side is the
// system of record; this package is a thin HTTP translation layer behind
// the domain repository interfaces.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go-diettrack-backend/config"
	"go-diettrack-backend/pkg/apperror"
)

type Client struct {
	baseURL    string
	serviceKey string
	anonKey    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.UpstreamTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.SupabaseUrl,
		serviceKey: cfg.SupabaseServiceKey,
		anonKey:    cfg.SupabaseAnonKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// rest performs a PostgREST request against /rest/v1/<table> with the
// privileged key. out may be nil when the response body is irrelevant.
func (c *Client) rest(ctx context.Context, method, table string, query url.Values, prefer string, body, out any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return apperror.Internal(err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperror.Internal(err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.Unavailable("database service unavailable: "+err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return upstreamError(resp, "database")
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperror.Unavailable("failed to parse database response", err)
		}
	}
	return nil
}

// authPost performs a GoTrue request against /auth/v1/<path> with the
// given API key (anon for sign-in, service for sign-up).
func (c *Client) authPost(ctx context.Context, path, apiKey string, body, out any) (int, error) {
	endpoint := fmt.Sprintf("%s/auth/v1/%s", c.baseURL, path)

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return 0, apperror.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, apperror.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, apperror.Unavailable("auth service unavailable: "+err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, upstreamError(resp, "auth")
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, apperror.Unavailable("failed to parse auth response", err)
		}
	}
	return resp.StatusCode, nil
}

// upstreamError extracts the human-readable message Supabase puts in its
// error bodies. GoTrue uses msg/error_description, PostgREST uses message.
func upstreamError(resp *http.Response, service string) error {
	var errResp map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&errResp)

	msg := fmt.Sprintf("%s service error (status %d)", service, resp.StatusCode)
	for _, key := range []string{"msg", "message", "error_description"} {
		if m, ok := errResp[key].(string); ok && m != "" {
			msg = m
			break
		}
	}
	return apperror.New(resp.StatusCode, msg, nil)
}
