// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

// Package middleware holds the gin middleware guarding the pipeline
// endpoints.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/interviewlens/interviewAPI/auth"
	"github.com/interviewlens/interviewAPI/config"
)

type storeConstructor func(*config.Config) (auth.TokenStore, error)

// AuthMiddleware validates bearer tokens against, in order: a Redis cache,
// a Postgres lookup (with Redis write-back on hit), and the static token
// list from the config file.
type AuthMiddleware struct {
	cfg        *config.Config
	redisStore auth.TokenStore
	pgStore    auth.TokenStore

	// Constructors are fields so tests can substitute fakes.
	redisConstructor    storeConstructor
	postgresConstructor storeConstructor
}

func NewAuthMiddleware(cfg *config.Config) (*AuthMiddleware, error) {
	m := &AuthMiddleware{
		cfg: cfg,
		redisConstructor: func(cfg *config.Config) (auth.TokenStore, error) {
			return auth.NewRedisTokenStore(cfg)
		},
		postgresConstructor: func(cfg *config.Config) (auth.TokenStore, error) {
			return auth.NewPostgresTokenStore(cfg)
		},
	}
	return m, m.initialize()
}

func (m *AuthMiddleware) initialize() error {
	if !m.cfg.Auth.Enabled {
		m.redisStore = nil
		m.pgStore = nil
		return nil
	}

	if m.cfg.Auth.Redis.Enabled {
		store, err := m.redisConstructor(m.cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis store: %v", err)
		}
		m.redisStore = store
	}

	if m.cfg.Auth.Postgres.Enabled {
		store, err := m.postgresConstructor(m.cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize Postgres store: %v", err)
		}
		m.pgStore = store
	}

	return nil
}

// Handler returns the gin middleware handler function.
func (m *AuthMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.cfg.Auth.Enabled {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		if m.redisStore != nil {
			valid, err := m.redisStore.ValidateToken(token)
			if err == nil && valid {
				c.Next()
				return
			}
		}

		if m.pgStore != nil {
			valid, err := m.pgStore.ValidateToken(token)
			if err == nil && valid {
				if m.redisStore != nil {
					_ = m.redisStore.CacheToken(token)
				}
				c.Next()
				return
			}
		}

		for _, validToken := range m.cfg.Auth.Tokens {
			if token == validToken {
				if m.redisStore != nil {
					_ = m.redisStore.CacheToken(token)
				}
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		c.Abort()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
