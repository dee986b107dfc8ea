// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

// Package auth provides pluggable API-token stores for the pipeline
// endpoints.
package auth

// TokenStore validates and caches bearer tokens.
type TokenStore interface {
	ValidateToken(token string) (bool, error)
	CacheToken(token string) error
}
