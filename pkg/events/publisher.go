// Package events broadcasts run and event family lifecycle notifications
// over PostgreSQL NOTIFY. Dashboards and downstream consumers LISTEN on the
// channels; nothing in this service consumes them. Delivery is best-effort:
// a failed publish is logged and never fails the calling operation.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// NOTIFY channels.
const (
	RunEventsChannel = "sni_run_events"
	EFEventsChannel  = "sni_ef_events"
)

// Publisher broadcasts JSON payloads via pg_notify.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishRunStatus broadcasts a run.status event on the run channel.
func (p *Publisher) PublishRunStatus(ctx context.Context, payload RunStatusPayload) error {
	payload.Type = EventTypeRunStatus
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return p.notify(ctx, RunEventsChannel, payload)
}

// PublishEFChanged broadcasts an ef.changed event on the EF channel.
func (p *Publisher) PublishEFChanged(ctx context.Context, payload EFChangedPayload) error {
	payload.Type = EventTypeEFChanged
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return p.notify(ctx, EFEventsChannel, payload)
}

// notify marshals the payload and issues pg_notify. Payloads here are small
// bounded structs, far under PostgreSQL's 8000-byte NOTIFY limit.
func (p *Publisher) notify(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payloadJSON)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}
