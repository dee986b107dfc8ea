// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/interviewlens/interviewAPI/config"
	_ "github.com/interviewlens/interviewAPI/docs"
	"github.com/interviewlens/interviewAPI/media"
	"github.com/interviewlens/interviewAPI/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "Path to configuration file")
)

// @title           Interview Feedback Pipeline API
// @version         1.0
// @description     Upload an interview recording, get a transcript, and request a structured feedback report.
// @BasePath       /
func main() {
	flag.Parse()

	// Load .env if present; provider keys come from the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Transcoding engine discovery runs once at startup; the result is an
	// explicit value handed to the normalizer, not a hidden global.
	enginePath, found := media.Discover(media.DefaultProbes(cfg)...)
	if found {
		logger.Info("transcoding engine discovered", zap.String("path", enginePath))
	} else {
		logger.Warn("no transcoding engine found; video uploads will be rejected")
	}
	normalizer := media.NewNormalizer(enginePath, logger)

	r := gin.Default()

	service := NewPipelineService(cfg, logger, normalizer)

	authMiddleware, err := middleware.NewAuthMiddleware(cfg)
	if err != nil {
		logger.Fatal("failed to initialize auth middleware", zap.Error(err))
	}
	r.POST("/transcribe", authMiddleware.Handler(), service.TranscribeHandler)
	r.POST("/analyze", authMiddleware.Handler(), service.AnalyzeHandler)

	// These endpoints remain public.
	r.GET("/health", healthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// loadConfig reads the YAML config file, falling back to built-in defaults
// when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Config file %s not found, using defaults", path)
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// @Summary     Health check endpoint
// @Description Get API health status
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(200, HealthResponse{Status: "ok"})
}
