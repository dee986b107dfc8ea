// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/interviewlens/interviewAPI/analyze"
	"github.com/interviewlens/interviewAPI/apierr"
	"github.com/interviewlens/interviewAPI/config"
	"github.com/interviewlens/interviewAPI/media"
	"github.com/interviewlens/interviewAPI/metrics"
	"github.com/interviewlens/interviewAPI/transcribe"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Provider credentials are read from the environment at request time so a
// key rotation needs no restart.
const (
	envTranscriptionKey = "DEEPGRAM_API_KEY"
	envAnalysisKey      = "PERPLEXITY_API_KEY"
)

// Transcriber converts an audio buffer to text via the speech-to-text
// provider.
type Transcriber interface {
	Transcribe(ctx context.Context, apiKey string, audio []byte) (*transcribe.Result, error)
}

// Analyzer produces a structured feedback report for a transcript via the
// LLM provider.
type Analyzer interface {
	Analyze(ctx context.Context, apiKey, transcript string) (*analyze.Result, error)
	Model() string
}

// PipelineService sequences validate -> normalize -> transcribe -> clean up
// for uploads, and validate -> analyze for transcripts. All state is
// request-scoped; nothing is shared across requests.
type PipelineService struct {
	cfg         *config.Config
	logger      *zap.Logger
	normalizer  *media.Normalizer
	transcriber Transcriber
	analyzer    Analyzer
}

func NewPipelineService(cfg *config.Config, logger *zap.Logger, normalizer *media.Normalizer) *PipelineService {
	return &PipelineService{
		cfg:        cfg,
		logger:     logger,
		normalizer: normalizer,
		transcriber: transcribe.NewClient(
			cfg.Deepgram.BaseURL,
			cfg.Deepgram.Model,
			cfg.Deepgram.Language,
			time.Duration(cfg.Deepgram.TimeoutSeconds)*time.Second,
			logger,
		),
		analyzer: analyze.NewClient(
			cfg.Perplexity.BaseURL,
			cfg.Perplexity.Model,
			cfg.Perplexity.MaxTokens,
			cfg.Perplexity.Temperature,
			cfg.Perplexity.TopP,
			time.Duration(cfg.Perplexity.TimeoutSeconds)*time.Second,
			logger,
		),
	}
}

// TranscribeResponse is the success payload of POST /transcribe.
type TranscribeResponse struct {
	Success       bool                  `json:"success"`
	Transcription string                `json:"transcription"`
	Confidence    float64               `json:"confidence"`
	Metadata      TranscriptionMetadata `json:"metadata"`
}

type TranscriptionMetadata struct {
	Duration float64 `json:"duration"`
	Channels int     `json:"channels"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Transcript string `json:"transcript"`
}

// AnalyzeResponse is the success payload of POST /analyze.
type AnalyzeResponse struct {
	Success  bool             `json:"success"`
	Analysis *analyze.Result  `json:"analysis"`
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	TranscriptLength  int    `json:"transcript_length"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
	ModelUsed         string `json:"model_used"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string   `json:"error"`
	Details          string   `json:"details,omitempty"`
	SupportedFormats []string `json:"supportedFormats,omitempty"`
}

// @Summary     Transcribe an interview recording
// @Description Upload an audio or video recording and receive a speech-to-text transcript. Video uploads are converted to audio first.
// @Tags        pipeline
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Recording to transcribe (webm, mp4, m4a, wav, mp3)"
// @Success     200 {object} TranscribeResponse
// @Failure     400 {object} ErrorResponse
// @Failure     429 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /transcribe [post]
func (s *PipelineService) TranscribeHandler(c *gin.Context) {
	// Credential presence is checked before any other validation.
	apiKey := os.Getenv(envTranscriptionKey)
	if apiKey == "" {
		s.logger.Error("transcription credential missing", zap.String("env", envTranscriptionKey))
		metrics.TranscriptionRequests.WithLabelValues("error", "unknown").Inc()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server configuration error: Missing API key"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		metrics.TranscriptionRequests.WithLabelValues("error", "unknown").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	format := strings.ToLower(filepath.Ext(file.Filename))
	if format == "" {
		format = "unknown"
	}

	if !s.typeAllowed(mimeType) {
		metrics.TranscriptionRequests.WithLabelValues("rejected", format).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Unsupported file type: %s. Supported types: %s",
				mimeType, strings.Join(s.cfg.Upload.AllowedTypes, ", ")),
		})
		return
	}

	// Size is checked against the declared upload size before any byte is
	// written to the scratch dir.
	maxBytes := s.cfg.Upload.MaxFileSize * 1024 * 1024
	if file.Size > maxBytes {
		metrics.TranscriptionRequests.WithLabelValues("rejected", format).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("File too large. Maximum size is %dMB", s.cfg.Upload.MaxFileSize),
		})
		return
	}

	timer := prometheus.NewTimer(metrics.TranscriptionDuration.WithLabelValues(format))
	defer timer.ObserveDuration()

	// Scratch names carry a random component so concurrent requests never
	// collide.
	requestID := uuid.NewString()
	inputPath := filepath.Join(s.cfg.Upload.ScratchDir,
		fmt.Sprintf("input_%s_%s", requestID, filepath.Base(file.Filename)))

	// Every scratch file created for this request is removed on all exit
	// paths, including client aborts.
	scratch := []string{inputPath}
	defer func() {
		s.cleanupFiles(scratch)
	}()

	if err := c.SaveUploadedFile(file, inputPath); err != nil {
		s.logger.Error("failed to save upload", zap.Error(err), zap.String("path", inputPath))
		metrics.TranscriptionRequests.WithLabelValues("error", format).Inc()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save uploaded file"})
		return
	}

	audioPath := inputPath
	if strings.HasPrefix(mimeType, "video/") {
		if !s.normalizer.Available() {
			s.logger.Warn("video upload rejected, no transcoding engine in deployment")
			metrics.TranscriptionRequests.WithLabelValues("rejected", format).Inc()
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:            "Video processing not supported in deployment environment",
				Details:          "Please upload audio files (.webm, .m4a, .wav, .mp3) instead of video files. Video processing requires a transcoding engine which is not available on this deployment platform.",
				SupportedFormats: s.audioFormats(),
			})
			return
		}

		outputPath := filepath.Join(s.cfg.Upload.ScratchDir, fmt.Sprintf("output_%s.wav", requestID))
		scratch = append(scratch, outputPath)

		if err := s.normalizer.Convert(c.Request.Context(), inputPath, outputPath); err != nil {
			metrics.MediaConversions.WithLabelValues("failure").Inc()
			metrics.TranscriptionRequests.WithLabelValues("error", format).Inc()
			s.respondError(c, err, s.audioFormats())
			return
		}
		metrics.MediaConversions.WithLabelValues("success").Inc()
		audioPath = outputPath
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		s.logger.Error("failed to read audio for transcription", zap.Error(err), zap.String("path", audioPath))
		metrics.TranscriptionRequests.WithLabelValues("error", format).Inc()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process file"})
		return
	}

	result, err := s.transcriber.Transcribe(c.Request.Context(), apiKey, audio)
	if err != nil {
		metrics.TranscriptionRequests.WithLabelValues("error", format).Inc()
		s.respondError(c, err, nil)
		return
	}

	metrics.AudioDuration.WithLabelValues(format).Observe(result.Duration)
	metrics.TranscriptionRequests.WithLabelValues("success", format).Inc()

	c.JSON(http.StatusOK, TranscribeResponse{
		Success:       true,
		Transcription: result.Transcript,
		Confidence:    result.Confidence,
		Metadata: TranscriptionMetadata{
			Duration: result.Duration,
			Channels: result.Channels,
		},
	})
}

// @Summary     Analyze an interview transcript
// @Description Submit a transcript and receive a structured feedback report for interviewee and recruiter.
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       request body AnalyzeRequest true "Transcript to analyze"
// @Success     200 {object} AnalyzeResponse
// @Failure     400 {object} ErrorResponse
// @Failure     429 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /analyze [post]
func (s *PipelineService) AnalyzeHandler(c *gin.Context) {
	apiKey := os.Getenv(envAnalysisKey)
	if apiKey == "" {
		s.logger.Error("analysis credential missing", zap.String("env", envAnalysisKey))
		metrics.AnalysisRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server configuration error: Missing analysis API key"})
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Transcript) == "" {
		metrics.AnalysisRequests.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No transcript provided or transcript is empty"})
		return
	}

	timer := prometheus.NewTimer(metrics.AnalysisDuration)
	defer timer.ObserveDuration()
	metrics.TranscriptLength.Observe(float64(len(req.Transcript)))

	result, err := s.analyzer.Analyze(c.Request.Context(), apiKey, req.Transcript)
	if err != nil {
		metrics.AnalysisRequests.WithLabelValues("error").Inc()
		s.respondError(c, err, nil)
		return
	}

	metrics.AnalysisRequests.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, AnalyzeResponse{
		Success:  true,
		Analysis: result,
		Metadata: AnalysisMetadata{
			TranscriptLength:  len(req.Transcript),
			AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
			ModelUsed:         s.analyzer.Model(),
		},
	})
}

// respondError translates a classified error into the wire shape. Internal
// error detail stays in the server log.
func (s *PipelineService) respondError(c *gin.Context, err error, supportedFormats []string) {
	e := apierr.AsError(err)
	s.logger.Error("request failed",
		zap.String("kind", e.Kind.String()),
		zap.String("path", c.FullPath()),
		zap.Error(err))

	resp := ErrorResponse{Error: e.Message, Details: e.Details}
	if apierr.HTTPStatus(err) == http.StatusBadRequest {
		resp.SupportedFormats = supportedFormats
	}
	c.JSON(apierr.HTTPStatus(err), resp)
}

func (s *PipelineService) typeAllowed(mimeType string) bool {
	for _, t := range s.cfg.Upload.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// audioFormats is the allow-list narrowed to audio types, used in guidance
// when video handling is unavailable.
func (s *PipelineService) audioFormats() []string {
	var out []string
	for _, t := range s.cfg.Upload.AllowedTypes {
		if strings.HasPrefix(t, "audio/") {
			out = append(out, t)
		}
	}
	return out
}

// cleanupFiles removes the request's scratch files. A file that is already
// gone is fine; any other failure is logged and never masks the request's
// primary result.
func (s *PipelineService) cleanupFiles(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			s.logger.Warn("failed to remove scratch file",
				zap.String("path", path), zap.Error(err))
		}
	}
}
