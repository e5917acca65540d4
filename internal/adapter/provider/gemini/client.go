// Package gemini is a thin client for the Google Gemini generateContent API.
// It is used to turn performance summaries into study recommendations.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
)

// Client calls the Gemini REST API with retries and backoff.
type Client struct {
	httpClient    *resty.Client
	model         string
	retryAttempts uint
}

// NewClient creates a Gemini client. baseURL is the API root, e.g.
// https://generativelanguage.googleapis.com/v1beta.
func NewClient(baseURL, apiKey, model string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", apiKey)

	return &Client{
		httpClient:    client,
		model:         model,
		retryAttempts: retryAttempts,
	}
}

// Model returns the model name configured for this client.
func (c *Client) Model() string {
	return c.model
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// isRetryableError reports whether an error should trigger a retry.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Network-level failures
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Server errors and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// GenerateContent sends a single-turn prompt and returns the model's text reply.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	var result string
	if err := retry.Do(
		func() error {
			text, err := c.generateContent(ctx, prompt)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = text
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts+1),
		retry.DelayType(retry.BackOffDelay),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&generateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*generateContentResponse)
	if !ok || responseBody == nil || len(responseBody.Candidates) == 0 {
		return "", fmt.Errorf("empty response body or candidates: %s", response.String())
	}

	parts := responseBody.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}

	return parts[0].Text, nil
}
