// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TranscriptionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "interviewapi_transcription_requests_total",
		Help: "Total number of transcription requests",
	}, []string{"status", "format"})

	TranscriptionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "interviewapi_transcription_duration_seconds",
		Help:    "Time spent serving transcription requests end-to-end",
		Buckets: prometheus.ExponentialBuckets(0.1, 2.0, 10), // 0.1s to ~51.2s
	}, []string{"format"})

	AudioDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "interviewapi_audio_duration_seconds",
		Help:    "Duration of transcribed audio as reported by the provider",
		Buckets: prometheus.ExponentialBuckets(1, 2.0, 10), // 1s to ~512s
	}, []string{"format"})

	MediaConversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "interviewapi_media_conversions_total",
		Help: "Video-to-audio conversion attempts",
	}, []string{"outcome"})

	AnalysisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "interviewapi_analysis_requests_total",
		Help: "Total number of transcript analysis requests",
	}, []string{"status"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "interviewapi_analysis_duration_seconds",
		Help:    "Time spent serving analysis requests end-to-end",
		Buckets: prometheus.ExponentialBuckets(0.1, 2.0, 10),
	})

	TranscriptLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "interviewapi_analysis_transcript_chars",
		Help:    "Character length of transcripts submitted for analysis",
		Buckets: prometheus.ExponentialBuckets(100, 4.0, 8), // 100 chars to ~1.6M
	})
)
