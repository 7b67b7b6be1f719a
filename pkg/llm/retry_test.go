package llm

import (
	"context"
	"sync"
	"testing"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient returns canned results in order, repeating the last one.
type scriptedClient struct {
	mu      sync.Mutex
	calls   int
	results []func() (*Response, error)
}

func (s *scriptedClient) Complete(_ context.Context, _ *Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	s.calls++
	return s.results[idx]()
}

func ok(content string) func() (*Response, error) {
	return func() (*Response, error) {
		return &Response{Content: content, Model: "test-model", Usage: Usage{TotalTokens: 10}}, nil
	}
}

func fail(err error) func() (*Response, error) {
	return func() (*Response, error) { return nil, err }
}

func retrierWith(client Client, maxRetries int) *Retrier {
	return NewRetrier(client, &config.LLMConfig{MaxRetries: maxRetries})
}

func TestRetrier_DoJSON_Success(t *testing.T) {
	client := &scriptedClient{results: []func() (*Response, error){
		ok(`{"answer": 42}`),
	}}
	r := retrierWith(client, 2)

	var out struct {
		Answer int `json:"answer"`
	}
	resp, err := r.DoJSON(context.Background(), &Request{User: "q"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Answer)
	assert.Equal(t, 10, resp.Usage.TotalTokens)
	assert.Equal(t, 1, client.calls)
}

func TestRetrier_DoJSON_RetriesTransient(t *testing.T) {
	client := &scriptedClient{results: []func() (*Response, error){
		fail(&Error{StatusCode: 429, Message: "rate limited", Retryable: true}),
		fail(&Error{StatusCode: 503, Message: "unavailable", Retryable: true}),
		ok(`{"answer": 7}`),
	}}
	r := retrierWith(client, 3)

	var out struct {
		Answer int `json:"answer"`
	}
	_, err := r.DoJSON(context.Background(), &Request{User: "q"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Answer)
	assert.Equal(t, 3, client.calls)
}

func TestRetrier_DoJSON_RetriesMalformed(t *testing.T) {
	client := &scriptedClient{results: []func() (*Response, error){
		ok(`the payload is: nothing useful`),
		ok("```json\n{\"answer\": 9}\n```"),
	}}
	r := retrierWith(client, 2)

	var out struct {
		Answer int `json:"answer"`
	}
	_, err := r.DoJSON(context.Background(), &Request{User: "q"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 9, out.Answer)
	assert.Equal(t, 2, client.calls)
}

func TestRetrier_DoJSON_PermanentStopsImmediately(t *testing.T) {
	client := &scriptedClient{results: []func() (*Response, error){
		fail(&Error{StatusCode: 401, Message: "unauthorized"}),
	}}
	r := retrierWith(client, 3)

	var out map[string]any
	_, err := r.DoJSON(context.Background(), &Request{User: "q"}, &out)
	require.Error(t, err)
	assert.Equal(t, 1, client.calls)
	assert.False(t, IsTransient(err))
}

func TestRetrier_DoJSON_ExhaustsBudget(t *testing.T) {
	client := &scriptedClient{results: []func() (*Response, error){
		ok(`still not json`),
	}}
	r := retrierWith(client, 1)

	var out map[string]any
	_, err := r.DoJSON(context.Background(), &Request{User: "q"}, &out)
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
	// Initial attempt plus one retry.
	assert.Equal(t, 2, client.calls)
}

func TestRetrier_DoJSON_ContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	client := &scriptedClient{results: []func() (*Response, error){
		func() (*Response, error) {
			cancel()
			return nil, &Error{StatusCode: 500, Message: "boom", Retryable: true}
		},
	}}
	r := retrierWith(client, 5)

	var out map[string]any
	_, err := r.DoJSON(ctx, &Request{User: "q"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, client.calls)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "bare array",
			input: `[1, 2, 3]`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose before and after",
			input: "Here is the result: {\"a\": 1} hope that helps!",
			want:  `{"a": 1}`,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "a { tricky ] value"} trailing`,
			want:  `{"text": "a { tricky ] value"}`,
		},
		{
			name:  "escaped quotes inside strings",
			input: `{"text": "quote \" and brace }"}`,
			want:  `{"text": "quote \" and brace }"}`,
		},
		{
			name:  "nested structures",
			input: `{"incidents": [{"id": 1, "titles": ["a", "b"]}]}`,
			want:  `{"incidents": [{"id": 1, "titles": ["a", "b"]}]}`,
		},
		{
			name:    "empty",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "no JSON at all",
			input:   "I could not produce the clustering.",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			input:   `{"a": [1, 2}`,
			wantErr: true,
		},
		{
			name:  "mismatched closer",
			input: `{"a": 1]`,
			// Depth counting accepts this; json.Unmarshal rejects it later.
			want: `{"a": 1]`,
		},
		{
			name:    "truncated",
			input:   `{"a": [1, 2`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsMalformed(err))
				return
			}
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
