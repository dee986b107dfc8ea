// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

// Package media turns uploaded video into the mono 16 kHz PCM WAV rendition
// the transcription provider expects, by driving an external ffmpeg binary.
package media

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/interviewlens/interviewAPI/apierr"
	"github.com/interviewlens/interviewAPI/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-audio/wav"
)

// Conversion parameters are fixed: the transcription provider wants mono
// 16 kHz signed 16-bit PCM.
const (
	outputCodec      = "pcm_s16le"
	outputChannels   = "1"
	outputSampleRate = "16000"
)

// ProbeFunc reports a candidate engine binary location. It returns the path
// and whether the candidate exists and is executable.
type ProbeFunc func() (string, bool)

// Discover walks the probe chain in priority order and returns the first
// usable engine path. ok is false when every probe fails.
func Discover(probes ...ProbeFunc) (string, bool) {
	for _, probe := range probes {
		if path, ok := probe(); ok {
			return path, true
		}
	}
	return "", false
}

// DefaultProbes builds the standard probe chain: the configured bundled
// binary, a constructed path under the local vendor directory, then the
// host's executable search path.
func DefaultProbes(cfg *config.Config) []ProbeFunc {
	return []ProbeFunc{
		func() (string, bool) {
			if cfg.FFmpeg.BundledPath == "" {
				return "", false
			}
			return cfg.FFmpeg.BundledPath, isExecutable(cfg.FFmpeg.BundledPath)
		},
		func() (string, bool) {
			wd, err := os.Getwd()
			if err != nil {
				return "", false
			}
			candidate := filepath.Join(wd, cfg.FFmpeg.VendorDir, "ffmpeg")
			return candidate, isExecutable(candidate)
		},
		func() (string, bool) {
			path, err := exec.LookPath("ffmpeg")
			if err != nil {
				return "", false
			}
			return path, true
		},
	}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

// Normalizer converts video input to WAV using a previously discovered
// engine binary. The zero engine path means conversion is unavailable in
// this deployment.
type Normalizer struct {
	engine string
	logger *zap.Logger
}

func NewNormalizer(engine string, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{engine: engine, logger: logger}
}

// Available reports whether a transcoding engine was discovered.
func (n *Normalizer) Available() bool {
	return n.engine != ""
}

// Engine returns the discovered binary path, for logs.
func (n *Normalizer) Engine() string {
	return n.engine
}

// Convert transcodes inputPath to a mono 16 kHz PCM WAV at outputPath,
// overwriting any existing file. On failure the output file must be treated
// as garbage by the caller; this component does not delete it.
func (n *Normalizer) Convert(ctx context.Context, inputPath, outputPath string) error {
	if !n.Available() {
		return apierr.New(apierr.UnsupportedInDeployment,
			"Video processing not supported in deployment environment").
			WithDetails("Please upload audio files (.webm, .m4a, .wav, .mp3) instead of video files.")
	}

	cmd := exec.CommandContext(ctx, n.engine,
		"-i", inputPath,
		"-f", "wav",
		"-acodec", outputCodec,
		"-ac", outputChannels,
		"-ar", outputSampleRate,
		"-y",
		outputPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	n.logger.Info("starting media conversion",
		zap.String("engine", n.engine),
		zap.String("input", inputPath),
		zap.String("output", outputPath))

	if err := cmd.Run(); err != nil {
		// Engine log output is informational only; keep it server-side.
		n.logger.Error("media conversion failed",
			zap.Error(err),
			zap.String("engine", n.engine),
			zap.String("stderr", truncate(stderr.String(), 2000)))
		return classifyRunError(n.engine, err, stderr.String())
	}

	// A zero exit status is not proof of a usable file; refuse to hand a
	// truncated or empty WAV to the transcription provider.
	if err := verifyWAV(outputPath); err != nil {
		n.logger.Error("converted output failed WAV validation",
			zap.String("output", outputPath), zap.Error(err))
		return apierr.Wrap(apierr.ConversionFailure, "Video conversion failed", err).
			WithDetails("Unable to convert video to audio. Please try uploading an audio file instead (.webm, .m4a, .wav, .mp3).")
	}

	if ce := n.logger.Check(zapcore.InfoLevel, "media conversion complete"); ce != nil {
		ce.Write(zap.String("output", outputPath))
	}
	return nil
}

// classifyRunError translates a subprocess failure into one of the
// human-actionable failure classes.
func classifyRunError(engine string, err error, stderr string) error {
	var execErr *exec.Error
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return apierr.Wrap(apierr.ConversionFailure,
			"Video conversion failed", err).
			WithDetails("Transcoding binary not found at: " + engine + ". Please check the installation.")
	case errors.As(err, &execErr), errors.Is(err, os.ErrPermission):
		return apierr.Wrap(apierr.ConversionFailure,
			"Video conversion failed", err).
			WithDetails("Cannot execute transcoding binary at: " + engine + ". Check permissions and path.")
	case strings.Contains(stderr, "Invalid data found"):
		return apierr.Wrap(apierr.ConversionFailure,
			"Video conversion failed", err).
			WithDetails("Invalid video format. Please upload a valid video file.")
	default:
		return apierr.Wrap(apierr.ConversionFailure,
			"Video conversion failed", err).
			WithDetails("Unable to convert video to audio. Please try uploading an audio file instead (.webm, .m4a, .wav, .mp3).")
	}
}

// verifyWAV opens path and checks that it decodes as a WAV container with a
// non-zero duration.
func verifyWAV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return errors.New("output is not a valid WAV file")
	}
	dur, err := decoder.Duration()
	if err != nil {
		return err
	}
	if dur <= 0 {
		return errors.New("output WAV has zero duration")
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
