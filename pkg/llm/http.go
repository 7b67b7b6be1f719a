package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/design4music/sni-platform-sub000/pkg/config"
)

// chatMessage is one entry in the OpenAI-style messages array.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the wire format for POST {base_url}/chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the wire format of a non-streaming completion.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// HTTPClient implements Client against any OpenAI-compatible chat
// completions endpoint. A weighted semaphore caps in-flight requests
// across every stage sharing the client.
type HTTPClient struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration

	httpClient *http.Client
	sem        *semaphore.Weighted
	metrics    Metrics
}

// NewHTTPClient creates an LLM client from configuration. maxInflight
// must be positive; config validation derives it from the stage
// concurrency limits when unset.
func NewHTTPClient(cfg *config.LLMConfig, maxInflight int64, metrics Metrics) *HTTPClient {
	return &HTTPClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
		httpClient: &http.Client{
			// The per-call context deadline is the effective bound; this
			// is a backstop for calls made without one.
			Timeout: cfg.Timeout + 10*time.Second,
		},
		sem:     semaphore.NewWeighted(maxInflight),
		metrics: metrics,
	}
}

// Complete performs one chat completion call. The call is bounded by the
// configured timeout; transport and status failures come back as *Error
// so the retry layer can classify them.
func (c *HTTPClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, &Error{Message: "API key not configured"}
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	start := time.Now()
	resp, err := c.complete(ctx, req)
	if c.metrics != nil {
		var usage Usage
		if resp != nil {
			usage = resp.Usage
		}
		c.metrics.RecordLLMCall(ctx, c.model, time.Since(start), usage, err)
	}
	return resp, err
}

func (c *HTTPClient) complete(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.User})

	body := chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Cancellation of the caller's context is not retryable; a
		// per-call deadline is.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Message: err.Error(), Retryable: true}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Message: fmt.Sprintf("failed to read response: %v", err), Retryable: true}
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, newStatusError(httpResp.StatusCode, truncateBody(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response envelope: %w", ErrMalformed)
	}

	if parsed.Error != nil {
		slog.Warn("LLM returned an in-band error",
			"type", parsed.Error.Type,
			"code", parsed.Error.Code)
		return nil, &Error{Message: parsed.Error.Message, Retryable: true}
	}

	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("no completion returned: %w", ErrMalformed)
	}

	model := parsed.Model
	if model == "" {
		model = c.model
	}

	return &Response{
		Content: strings.TrimSpace(parsed.Choices[0].Message.Content),
		Model:   model,
		Usage: Usage{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
		},
	}, nil
}

// truncateBody keeps error messages loggable when providers return
// full HTML error pages.
func truncateBody(body []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
