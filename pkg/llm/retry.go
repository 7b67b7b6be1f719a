package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/design4music/sni-platform-sub000/pkg/config"
)

// Retry schedule for transient and malformed failures.
const (
	retryInitialInterval = 500 * time.Millisecond
	retryMaxInterval     = 30 * time.Second
	retryJitter          = 0.2
	retryMultiplier      = 2.0
)

// Retrier wraps a Client with the shared retry budget. Transient
// transport failures and malformed payloads draw from the same attempt
// count; everything else fails the call immediately.
type Retrier struct {
	client     Client
	maxRetries uint64
}

// NewRetrier creates a Retrier with the configured attempt budget.
func NewRetrier(client Client, cfg *config.LLMConfig) *Retrier {
	return &Retrier{
		client:     client,
		maxRetries: uint64(cfg.MaxRetries),
	}
}

// newBackOff returns a fresh schedule per logical call; BackOff
// implementations are stateful.
func (r *Retrier) newBackOff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.MaxInterval = retryMaxInterval
	bo.RandomizationFactor = retryJitter
	bo.Multiplier = retryMultiplier
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock
	return backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)
}

// DoJSON performs one logical completion and unmarshals the strict-JSON
// payload into target. The last response is returned alongside nil error
// on success; on exhaustion the final attempt's error comes back.
func (r *Retrier) DoJSON(ctx context.Context, req *Request, target any) (*Response, error) {
	var resp *Response

	op := func() error {
		var err error
		resp, err = r.client.Complete(ctx, req)
		if err != nil {
			if IsTransient(err) || IsMalformed(err) {
				return err
			}
			return backoff.Permanent(err)
		}

		payload, err := ExtractJSON(resp.Content)
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(payload), target); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", ErrMalformed)
		}
		return nil
	}

	if err := backoff.Retry(op, r.newBackOff(ctx)); err != nil {
		return nil, err
	}
	return resp, nil
}

// ExtractJSON pulls the first JSON object or array out of an LLM reply.
// Models occasionally wrap payloads in markdown fences or prose even when
// told not to; anything without a parseable JSON value is ErrMalformed.
func ExtractJSON(content string) (string, error) {
	s := strings.TrimSpace(content)
	if s == "" {
		return "", fmt.Errorf("empty response: %w", ErrMalformed)
	}

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", fmt.Errorf("no JSON value in response: %w", ErrMalformed)
	}

	payload := s[start:]
	end, err := balancedEnd(payload)
	if err != nil {
		return "", err
	}
	return payload[:end], nil
}

// balancedEnd scans to the close of the first JSON value, skipping braces
// inside string literals, so trailing prose after the payload is dropped.
func balancedEnd(s string) (int, error) {
	var depth int
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}

	return 0, fmt.Errorf("unbalanced JSON in response: %w", ErrMalformed)
}
