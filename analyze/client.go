// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

// Package analyze wraps the LLM provider that turns an interview transcript
// into a structured feedback report. The provider speaks the OpenAI
// chat-completions dialect, so the client is built on go-openai with a
// custom base URL.
package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/interviewlens/interviewAPI/apierr"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Client issues one chat-completion per transcript with fixed,
// deterministic-leaning sampling parameters. The API key is supplied per
// call, read from the process environment at request time.
type Client struct {
	baseURL     string
	model       string
	maxTokens   int
	temperature float32
	topP        float32
	timeout     time.Duration
	logger      *zap.Logger
}

func NewClient(baseURL, model string, maxTokens int, temperature, topP float32, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:     baseURL,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		timeout:     timeout,
		logger:      logger,
	}
}

// Model returns the configured model identifier, echoed in response metadata.
func (c *Client) Model() string {
	return c.model
}

// Analyze submits the transcript for analysis and parses the reply into a
// Result. A reply that is not parseable JSON does not fail the call: the
// fixed degraded result is returned with the verbatim reply in RawFeedback.
// This is deliberate graceful degradation, not a bug; the provider's answer
// is never lost.
func (c *Client) Analyze(ctx context.Context, apiKey, transcript string) (*Result, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, apierr.New(apierr.Validation, "No transcript provided or transcript is empty")
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = &http.Client{Timeout: c.timeout}
	client := openai.NewClientWithConfig(cfg)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(transcript),
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
		Stream:      false,
	}

	start := time.Now()
	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, c.classifyCallError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, apierr.New(apierr.MalformedResponse, "Analysis service returned no choices")
	}

	content := resp.Choices[0].Message.Content
	c.logger.Info("analysis response received",
		zap.Int("reply_chars", len(content)),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	result := &Result{}
	cleaned := stripCodeFences(content)
	if err := json.Unmarshal([]byte(cleaned), result); err != nil {
		c.logger.Warn("analysis reply was not structured JSON, substituting degraded result",
			zap.Error(err), zap.String("reply_preview", preview(content, 500)))
		return degradedResult(content), nil
	}

	result.normalize()
	return result, nil
}

// classifyCallError maps provider transport/status failures onto the error
// taxonomy: 401 is a credential problem, 429 is retryable throttling,
// anything else is a provider failure.
func (c *Client) classifyCallError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		return apierr.Wrap(apierr.Configuration, "Invalid API key configuration", err)
	case http.StatusTooManyRequests:
		return apierr.Wrap(apierr.RateLimited, "API quota exceeded. Please try again later.", err)
	default:
		return apierr.Wrap(apierr.Provider, "Failed to analyze transcript", err)
	}
}

// stripCodeFences removes the ```json wrappers some models emit around
// otherwise valid JSON.
func stripCodeFences(content string) string {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}

func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
