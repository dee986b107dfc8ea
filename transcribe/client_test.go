// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/interviewlens/interviewAPI/apierr"
	"github.com/stretchr/testify/assert"
)

const goodListenResponse = `{
	"metadata": {"duration": 12.5, "channels": 1},
	"results": {
		"channels": [
			{"alternatives": [{"transcript": "tell me about yourself", "confidence": 0.97}]}
		]
	}
}`

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "nova-2", "en-US", 5*time.Second, nil)
}

func TestTranscribe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.Query()
			assert.Equal(t, "/v1/listen", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(goodListenResponse))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		result, err := client.Transcribe(context.Background(), "test-key", []byte("audio bytes"))
		assert.NoError(t, err)

		assert.Equal(t, "tell me about yourself", result.Transcript)
		assert.Equal(t, 0.97, result.Confidence)
		assert.Equal(t, 12.5, result.Duration)
		assert.Equal(t, 1, result.Channels)

		assert.Equal(t, "Token test-key", gotAuth)
		assert.Equal(t, []string{"nova-2"}, gotQuery["model"])
		assert.Equal(t, []string{"en-US"}, gotQuery["language"])
		assert.Equal(t, []string{"true"}, gotQuery["smart_format"])
		assert.Equal(t, []string{"true"}, gotQuery["punctuate"])
		assert.Equal(t, []string{"true"}, gotQuery["diarize"])
	})

	t.Run("RateLimited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Transcribe(context.Background(), "k", []byte("a"))
		assert.Error(t, err)
		kind, ok := apierr.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, apierr.RateLimited, kind)
	})

	t.Run("ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"err_code": "INVALID_AUDIO", "err_msg": "corrupt audio data"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Transcribe(context.Background(), "k", []byte("a"))
		assert.Error(t, err)

		e := apierr.AsError(err)
		assert.Equal(t, apierr.Provider, e.Kind)
		assert.Contains(t, e.Message, "corrupt audio data")
	})

	t.Run("EmptyChannels", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"metadata": {"duration": 1, "channels": 0}, "results": {"channels": []}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Transcribe(context.Background(), "k", []byte("a"))
		assert.Error(t, err)
		kind, ok := apierr.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, apierr.MalformedResponse, kind)
	})

	t.Run("EmptyAlternatives", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": {"channels": [{"alternatives": []}]}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Transcribe(context.Background(), "k", []byte("a"))
		assert.Error(t, err)
		kind, ok := apierr.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, apierr.MalformedResponse, kind)
	})

	t.Run("UnreadableBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Transcribe(context.Background(), "k", []byte("a"))
		assert.Error(t, err)
		kind, ok := apierr.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, apierr.MalformedResponse, kind)
	})

	t.Run("ServerUnreachable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "nova-2", "en-US", time.Second, nil)
		_, err := client.Transcribe(context.Background(), "k", []byte("a"))
		assert.Error(t, err)
		kind, ok := apierr.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, apierr.Provider, kind)
	})
}
