// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package auth

// MockTokenStore is an in-memory TokenStore for tests.
type MockTokenStore struct {
	tokens map[string]bool
}

func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{
		tokens: make(map[string]bool),
	}
}

func (m *MockTokenStore) ValidateToken(token string) (bool, error) {
	valid, exists := m.tokens[token]
	return valid && exists, nil
}

func (m *MockTokenStore) CacheToken(token string) error {
	m.tokens[token] = true
	return nil
}
