package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLLMConfig(baseURL string) *config.LLMConfig {
	return &config.LLMConfig{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.1,
		Timeout:     5 * time.Second,
		MaxRetries:  3,
		MaxTokens:   256,
	}
}

func completionBody(content string) string {
	resp := map[string]any{
		"id":    "chatcmpl-1",
		"model": "test-model",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     12,
			"completion_tokens": 4,
			"total_tokens":      16,
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestHTTPClient_Complete(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("  {\"ok\": true}  ")))
	}))
	defer server.Close()

	client := NewHTTPClient(testLLMConfig(server.URL), 4, nil)

	resp, err := client.Complete(context.Background(), &Request{
		System: "You cluster news titles.",
		User:   "Cluster these titles.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 0.1, gotReq.Temperature)
	assert.Equal(t, 256, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)

	// Content is trimmed, usage mapped through.
	assert.Equal(t, `{"ok": true}`, resp.Content)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, 12, resp.Usage.PromptTokens)
	assert.Equal(t, 4, resp.Usage.CompletionTokens)
	assert.Equal(t, 16, resp.Usage.TotalTokens)
}

func TestHTTPClient_StatusClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantTransient bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantTransient: true},
		{name: "server error", status: http.StatusInternalServerError, wantTransient: true},
		{name: "bad gateway", status: http.StatusBadGateway, wantTransient: true},
		{name: "bad request", status: http.StatusBadRequest, wantTransient: false},
		{name: "unauthorized", status: http.StatusUnauthorized, wantTransient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			client := NewHTTPClient(testLLMConfig(server.URL), 1, nil)
			_, err := client.Complete(context.Background(), &Request{User: "hi"})
			require.Error(t, err)
			assert.Equal(t, tt.wantTransient, IsTransient(err))
			assert.False(t, IsMalformed(err))
		})
	}
}

func TestHTTPClient_InBandError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error", "code": "overloaded"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testLLMConfig(server.URL), 1, nil)
	_, err := client.Complete(context.Background(), &Request{User: "hi"})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Contains(t, err.Error(), "overloaded")
}

func TestHTTPClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "choices": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testLLMConfig(server.URL), 1, nil)
	_, err := client.Complete(context.Background(), &Request{User: "hi"})
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
}

func TestHTTPClient_MissingAPIKey(t *testing.T) {
	cfg := testLLMConfig("http://localhost:1")
	cfg.APIKey = ""
	client := NewHTTPClient(cfg, 1, nil)

	_, err := client.Complete(context.Background(), &Request{User: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not configured")
	assert.False(t, IsTransient(err))
}

func TestHTTPClient_CallerCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewHTTPClient(testLLMConfig(server.URL), 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Complete(ctx, &Request{User: "hi"})
	require.Error(t, err)
	// Caller cancellation must not be classified as retryable.
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsTransient(err))
}

func TestHTTPClient_InflightCap(t *testing.T) {
	var active, maxActive int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := atomic.AddInt64(&active, 1)
		for {
			prev := atomic.LoadInt64(&maxActive)
			if cur <= prev || atomic.CompareAndSwapInt64(&maxActive, prev, cur) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
		atomic.AddInt64(&active, -1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("{}")))
	}))
	defer server.Close()

	client := NewHTTPClient(testLLMConfig(server.URL), 2, nil)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Complete(context.Background(), &Request{User: "hi"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&maxActive), int64(2))
}

type recordedCall struct {
	model string
	usage Usage
	err   error
}

type fakeMetrics struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeMetrics) RecordLLMCall(_ context.Context, model string, _ time.Duration, usage Usage, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{model: model, usage: usage, err: err})
}

func TestHTTPClient_RecordsMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("{}")))
	}))
	defer server.Close()

	metrics := &fakeMetrics{}
	client := NewHTTPClient(testLLMConfig(server.URL), 1, metrics)

	_, err := client.Complete(context.Background(), &Request{User: "hi"})
	require.NoError(t, err)

	require.Len(t, metrics.calls, 1)
	assert.Equal(t, "test-model", metrics.calls[0].model)
	assert.Equal(t, 16, metrics.calls[0].usage.TotalTokens)
	assert.NoError(t, metrics.calls[0].err)
}
