// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenStoreInterface(t *testing.T) {
	var store TokenStore = NewMockTokenStore()

	valid, err := store.ValidateToken("test-token")
	assert.NoError(t, err)
	assert.False(t, valid)

	err = store.CacheToken("test-token")
	assert.NoError(t, err)

	valid, err = store.ValidateToken("test-token")
	assert.NoError(t, err)
	assert.True(t, valid)
}
