// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

// Package transcribe wraps the Deepgram pre-recorded speech-to-text API.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/interviewlens/interviewAPI/apierr"
	"go.uber.org/zap"
)

// Result is the extracted transcription outcome for one audio buffer.
type Result struct {
	Transcript string
	Confidence float64
	Duration   float64
	Channels   int
}

// listenResponse mirrors the provider's nested pre-recorded response shape.
// Only the fields this service consumes are mapped.
type listenResponse struct {
	Metadata struct {
		Duration float64 `json:"duration"`
		Channels int     `json:"channels"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

type errorResponse struct {
	ErrCode string `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
	Error   string `json:"error"`
}

// Client calls the provider's /v1/listen endpoint with fixed recognition
// options. The API key is supplied per call; it is read from the process
// environment at request time, not held here.
type Client struct {
	baseURL  string
	model    string
	language string
	http     *http.Client
	logger   *zap.Logger
}

func NewClient(baseURL, model, language string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  baseURL,
		model:    model,
		language: language,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Transcribe submits the full audio buffer and extracts the primary
// transcript. Recognition options are fixed: smart formatting, punctuation
// and speaker diarization on. Diarization output beyond the flat transcript
// of the first alternative is not surfaced. No retries at this layer.
func (c *Client) Transcribe(ctx context.Context, apiKey string, audio []byte) (*Result, error) {
	q := url.Values{}
	q.Set("model", c.model)
	q.Set("language", c.language)
	q.Set("smart_format", "true")
	q.Set("punctuate", "true")
	q.Set("diarize", "true")

	endpoint := c.baseURL + "/v1/listen?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return nil, apierr.Wrap(apierr.Provider, "failed to build transcription request", err)
	}
	req.Header.Set("Authorization", "Token "+apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierr.Wrap(apierr.Provider, "transcription service unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Wrap(apierr.Provider, "failed to read transcription response", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, apierr.New(apierr.RateLimited, "Transcription service rate limit exceeded. Please try again later.")
	}
	if resp.StatusCode != http.StatusOK {
		msg := providerMessage(body)
		c.logger.Error("transcription provider error",
			zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, apierr.Newf(apierr.Provider, "transcription failed: %s", msg)
	}

	var parsed listenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, apierr.Wrap(apierr.MalformedResponse, "transcription service returned an unreadable response", err)
	}

	// The provider nests transcript data two levels deep; verify each level
	// exists instead of indexing blind.
	if len(parsed.Results.Channels) == 0 {
		return nil, apierr.New(apierr.MalformedResponse, "transcription service returned empty or invalid results")
	}
	if len(parsed.Results.Channels[0].Alternatives) == 0 {
		return nil, apierr.New(apierr.MalformedResponse, "transcription service returned no transcript alternatives")
	}

	alt := parsed.Results.Channels[0].Alternatives[0]
	c.logger.Info("transcription complete",
		zap.Float64("confidence", alt.Confidence),
		zap.Float64("audio_seconds", parsed.Metadata.Duration),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		Transcript: alt.Transcript,
		Confidence: alt.Confidence,
		Duration:   parsed.Metadata.Duration,
		Channels:   parsed.Metadata.Channels,
	}, nil
}

func providerMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		if e.ErrMsg != "" {
			return e.ErrMsg
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return fmt.Sprintf("unexpected provider response (%d bytes)", len(body))
}
