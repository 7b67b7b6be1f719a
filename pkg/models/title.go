// Package models contains request models and business domain types shared
// across the pipeline, services, and API layers. Types here are plain
// values; ent/schema embeds the JSON-persisted ones, so this package must
// stay free of ent imports.
package models

import "time"

// Title is the pipeline's view of a selectable title.
type Title struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Lang        string    `json:"lang"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Actors      []string  `json:"actors,omitempty"`
}

// Incident is one clustering hypothesis produced by the Map stage: a set
// of titles the model believes describe the same underlying incident.
type Incident struct {
	ID         string   `json:"id"`
	TitleIDs   []string `json:"title_ids"`
	Rationale  string   `json:"rationale,omitempty"`
	Confidence float64  `json:"confidence"`
	Singleton  bool     `json:"singleton"`
}

// CreateTitleRequest contains fields for inserting a title row. Ingestion
// owns title writes in production; tests and seed tooling use this path.
type CreateTitleRequest struct {
	URLHash     string    `json:"url_hash"`
	TitleText   string    `json:"title_text"`
	Lang        string    `json:"lang"`
	SourceName  string    `json:"source_name"`
	PublishedAt time.Time `json:"published_at"`
	GateKeep    bool      `json:"gate_keep"`
	GateScore   *float64  `json:"gate_score,omitempty"`
	GateActors  []string  `json:"gate_actors,omitempty"`
}
