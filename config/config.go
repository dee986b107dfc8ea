// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	API struct {
		BasePath    string `yaml:"base_path"`
		SwaggerHost string `yaml:"swagger_host"`
	} `yaml:"api"`

	Upload struct {
		MaxFileSize  int64    `yaml:"max_file_size_mb"`
		AllowedTypes []string `yaml:"allowed_types"`
		ScratchDir   string   `yaml:"scratch_dir"`
	} `yaml:"upload"`

	FFmpeg struct {
		BundledPath string `yaml:"bundled_path"`
		VendorDir   string `yaml:"vendor_dir"`
	} `yaml:"ffmpeg"`

	Deepgram struct {
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		Language       string `yaml:"language"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"deepgram"`

	Perplexity struct {
		BaseURL        string  `yaml:"base_url"`
		Model          string  `yaml:"model"`
		MaxTokens      int     `yaml:"max_tokens"`
		Temperature    float32 `yaml:"temperature"`
		TopP           float32 `yaml:"top_p"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
	} `yaml:"perplexity"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`

	Auth struct {
		Enabled bool     `yaml:"enabled"`
		Tokens  []string `yaml:"tokens"` // Fallback static tokens
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			DB       int    `yaml:"db"`
			Password string `yaml:"password"`
			KeyTTL   int    `yaml:"key_ttl"` // TTL in seconds
		} `yaml:"redis"`
		Postgres struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			DBName   string `yaml:"dbname"`
			Query    string `yaml:"query"` // Parameterized query for token lookup
		} `yaml:"postgres"`
	} `yaml:"auth"`
}

// DefaultAllowedTypes is the upload MIME allow-list used when the config
// file does not override it.
var DefaultAllowedTypes = []string{
	"audio/webm",
	"video/webm",
	"audio/m4a",
	"video/mp4",
	"audio/wav",
	"audio/mp3",
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	config.applyDefaults()
	return config, nil
}

// Default returns a configuration with all defaults applied, for running
// without a config file.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.API.BasePath == "" {
		c.API.BasePath = "/"
	}
	if c.Upload.MaxFileSize == 0 {
		c.Upload.MaxFileSize = 100
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = DefaultAllowedTypes
	}
	if c.Upload.ScratchDir == "" {
		c.Upload.ScratchDir = os.TempDir()
	}
	if c.FFmpeg.VendorDir == "" {
		c.FFmpeg.VendorDir = "bin"
	}
	if c.Deepgram.BaseURL == "" {
		c.Deepgram.BaseURL = "https://api.deepgram.com"
	}
	if c.Deepgram.Model == "" {
		c.Deepgram.Model = "nova-2"
	}
	if c.Deepgram.Language == "" {
		c.Deepgram.Language = "en-US"
	}
	if c.Deepgram.TimeoutSeconds == 0 {
		c.Deepgram.TimeoutSeconds = 90
	}
	if c.Perplexity.BaseURL == "" {
		c.Perplexity.BaseURL = "https://api.perplexity.ai"
	}
	if c.Perplexity.Model == "" {
		c.Perplexity.Model = "sonar-pro"
	}
	if c.Perplexity.MaxTokens == 0 {
		c.Perplexity.MaxTokens = 4000
	}
	if c.Perplexity.Temperature == 0 {
		c.Perplexity.Temperature = 0.2
	}
	if c.Perplexity.TopP == 0 {
		c.Perplexity.TopP = 0.9
	}
	if c.Perplexity.TimeoutSeconds == 0 {
		c.Perplexity.TimeoutSeconds = 120
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}
