package events

import "github.com/design4music/sni-platform-sub000/pkg/models"

// Event type discriminators carried in every payload's "type" field.
const (
	EventTypeRunStatus = "run.status"
	EventTypeEFChanged = "ef.changed"
)

// EF actions carried in EFChangedPayload.
const (
	EFActionCreated = "created"
	EFActionUpdated = "updated"
	EFActionMerged  = "merged"
)

// RunStatusPayload is broadcast on every run status transition, including
// the terminal ones. Counters reflect the run's progress at publish time.
type RunStatusPayload struct {
	Type          string             `json:"type"` // always EventTypeRunStatus
	RunID         string             `json:"run_id"`
	Status        string             `json:"status"`
	ErrorCategory string             `json:"error_category,omitempty"`
	Counters      models.RunCounters `json:"counters"`
	Timestamp     string             `json:"timestamp"` // RFC3339Nano
}

// EFChangedPayload is broadcast after an event family commit: created for
// new EFs, updated for survivors that absorbed titles, merged for stored
// EFs retired into a survivor.
type EFChangedPayload struct {
	Type       string `json:"type"` // always EventTypeEFChanged
	EFID       string `json:"ef_id"`
	EFKey      string `json:"ef_key"`
	Action     string `json:"action"`
	RunID      string `json:"run_id"`
	TitleCount int    `json:"title_count"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}
