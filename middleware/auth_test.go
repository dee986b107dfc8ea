// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/interviewlens/interviewAPI/auth"
	"github.com/interviewlens/interviewAPI/config"
	"github.com/stretchr/testify/assert"
)

func mockRedisConstructor(cfg *config.Config) (auth.TokenStore, error) {
	return auth.NewMockTokenStore(), nil
}

func mockPostgresConstructor(cfg *config.Config) (auth.TokenStore, error) {
	return auth.NewMockTokenStore(), nil
}

func setupAuthTest() (*config.Config, *auth.MockTokenStore, *auth.MockTokenStore) {
	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.Tokens = []string{"static-token"}

	return cfg, auth.NewMockTokenStore(), auth.NewMockTokenStore()
}

func newTestRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/transcribe", m.Handler(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg, mockRedis, mockPg := setupAuthTest()

	t.Run("AuthDisabled", func(t *testing.T) {
		cfg.Auth.Enabled = false
		m := &AuthMiddleware{cfg: cfg, redisStore: mockRedis, pgStore: mockPg}
		r := newTestRouter(m)

		req := httptest.NewRequest("POST", "/transcribe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ValidStaticToken", func(t *testing.T) {
		cfg.Auth.Enabled = true
		m := &AuthMiddleware{cfg: cfg, redisStore: mockRedis, pgStore: mockPg}
		r := newTestRouter(m)

		req := httptest.NewRequest("POST", "/transcribe", nil)
		req.Header.Set("Authorization", "Bearer static-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		cfg.Auth.Enabled = true
		m := &AuthMiddleware{cfg: cfg, redisStore: mockRedis, pgStore: mockPg}
		r := newTestRouter(m)

		req := httptest.NewRequest("POST", "/transcribe", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MissingAuthHeader", func(t *testing.T) {
		cfg.Auth.Enabled = true
		m := &AuthMiddleware{cfg: cfg, redisStore: mockRedis, pgStore: mockPg}
		r := newTestRouter(m)

		req := httptest.NewRequest("POST", "/transcribe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTokenValidationFlow(t *testing.T) {
	cfg, mockRedis, mockPg := setupAuthTest()

	m := &AuthMiddleware{cfg: cfg, redisStore: mockRedis, pgStore: mockPg}
	r := newTestRouter(m)

	t.Run("TokenFoundInRedis", func(t *testing.T) {
		mockRedis.CacheToken("redis-token")

		req := httptest.NewRequest("POST", "/transcribe", nil)
		req.Header.Set("Authorization", "Bearer redis-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("TokenFoundInPostgresCachesToRedis", func(t *testing.T) {
		mockPg.CacheToken("pg-token")

		req := httptest.NewRequest("POST", "/transcribe", nil)
		req.Header.Set("Authorization", "Bearer pg-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		valid, _ := mockRedis.ValidateToken("pg-token")
		assert.True(t, valid)
	})
}

func TestAuthConfigurationBehavior(t *testing.T) {
	t.Run("AuthDisabledOverridesStores", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Auth.Enabled = false
		cfg.Auth.Redis.Enabled = true    // Should be ignored
		cfg.Auth.Postgres.Enabled = true // Should be ignored

		m := &AuthMiddleware{
			cfg:                 cfg,
			redisConstructor:    mockRedisConstructor,
			postgresConstructor: mockPostgresConstructor,
		}
		err := m.initialize()
		assert.NoError(t, err)
		assert.Nil(t, m.redisStore)
		assert.Nil(t, m.pgStore)
	})

	t.Run("AuthEnabledRespectsStoreConfig", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Auth.Enabled = true
		cfg.Auth.Redis.Enabled = true
		cfg.Auth.Postgres.Enabled = false

		m := &AuthMiddleware{
			cfg:                 cfg,
			redisConstructor:    mockRedisConstructor,
			postgresConstructor: mockPostgresConstructor,
		}
		err := m.initialize()
		assert.NoError(t, err)
		assert.NotNil(t, m.redisStore)
		assert.Nil(t, m.pgStore)

		cfg.Auth.Redis.Enabled = false
		cfg.Auth.Postgres.Enabled = true

		m = &AuthMiddleware{
			cfg:                 cfg,
			redisConstructor:    mockRedisConstructor,
			postgresConstructor: mockPostgresConstructor,
		}
		err = m.initialize()
		assert.NoError(t, err)
		assert.Nil(t, m.redisStore)
		assert.NotNil(t, m.pgStore)
	})
}
