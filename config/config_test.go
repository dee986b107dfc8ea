// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	content := []byte(`
server:
  host: testhost
  port: 9090

api:
  base_path: /api/v1
  swagger_host: test.api.com

upload:
  max_file_size_mb: 50
  scratch_dir: /var/scratch
  allowed_types:
    - audio/wav
    - video/mp4

ffmpeg:
  bundled_path: /opt/ffmpeg/ffmpeg
  vendor_dir: vendorbin

deepgram:
  base_url: https://deepgram.test
  model: nova-2
  language: en-GB
  timeout_seconds: 30

perplexity:
  base_url: https://perplexity.test
  model: sonar-pro
  max_tokens: 2000
  temperature: 0.1
  top_p: 0.8
  timeout_seconds: 60

metrics:
  enabled: true
  path: /metrics
`)

	tmpfile, err := os.CreateTemp("", "config.*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write(content)
	assert.NoError(t, err)
	tmpfile.Close()

	cfg, err := LoadConfig(tmpfile.Name())
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "testhost", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.API.BasePath)
	assert.Equal(t, int64(50), cfg.Upload.MaxFileSize)
	assert.Equal(t, "/var/scratch", cfg.Upload.ScratchDir)
	assert.Equal(t, []string{"audio/wav", "video/mp4"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "/opt/ffmpeg/ffmpeg", cfg.FFmpeg.BundledPath)
	assert.Equal(t, "https://deepgram.test", cfg.Deepgram.BaseURL)
	assert.Equal(t, "en-GB", cfg.Deepgram.Language)
	assert.Equal(t, 30, cfg.Deepgram.TimeoutSeconds)
	assert.Equal(t, 2000, cfg.Perplexity.MaxTokens)
	assert.Equal(t, float32(0.1), cfg.Perplexity.Temperature)
	assert.Equal(t, true, cfg.Metrics.Enabled)
}

func TestDefaultValues(t *testing.T) {
	content := []byte(`{}`)

	tmpfile, err := os.CreateTemp("", "config.*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write(content)
	assert.NoError(t, err)
	tmpfile.Close()

	cfg, err := LoadConfig(tmpfile.Name())
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/", cfg.API.BasePath)
	assert.Equal(t, int64(100), cfg.Upload.MaxFileSize)
	assert.Equal(t, DefaultAllowedTypes, cfg.Upload.AllowedTypes)
	assert.Equal(t, os.TempDir(), cfg.Upload.ScratchDir)
	assert.Equal(t, "https://api.deepgram.com", cfg.Deepgram.BaseURL)
	assert.Equal(t, "nova-2", cfg.Deepgram.Model)
	assert.Equal(t, "en-US", cfg.Deepgram.Language)
	assert.Equal(t, 90, cfg.Deepgram.TimeoutSeconds)
	assert.Equal(t, "https://api.perplexity.ai", cfg.Perplexity.BaseURL)
	assert.Equal(t, "sonar-pro", cfg.Perplexity.Model)
	assert.Equal(t, 4000, cfg.Perplexity.MaxTokens)
	assert.Equal(t, float32(0.2), cfg.Perplexity.Temperature)
	assert.Equal(t, float32(0.9), cfg.Perplexity.TopP)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(100), cfg.Upload.MaxFileSize)
	assert.Equal(t, DefaultAllowedTypes, cfg.Upload.AllowedTypes)
	assert.False(t, cfg.Auth.Enabled)
}
