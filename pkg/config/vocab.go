package config

import (
	"strings"

	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// VocabConfig holds the closed vocabularies that define EF identity.
// Members are uppercase tokens; both fallbacks (GLOBAL, OTHER) must be
// present because unknown model answers normalize to them.
type VocabConfig struct {
	Theaters   []string `yaml:"theaters"`
	EventTypes []string `yaml:"event_types"`
}

// DefaultVocabConfig returns the built-in vocabularies.
func DefaultVocabConfig() *VocabConfig {
	return &VocabConfig{
		Theaters: []string{
			"EUROPE",
			"MIDEAST",
			"AMERICAS",
			"ASIA_PAC",
			"AFRICA",
			models.FallbackTheater,
		},
		EventTypes: []string{
			"DIPLOMACY",
			"MILITARY_OP",
			"ECONOMIC_POLICY",
			"DOMESTIC_POLITICS",
			"TECH_REG",
			"ENERGY",
			"CYBER",
			models.FallbackEventType,
		},
	}
}

// HasTheater reports vocabulary membership after normalization.
func (v *VocabConfig) HasTheater(s string) bool {
	return contains(v.Theaters, Normalize(s))
}

// HasEventType reports vocabulary membership after normalization.
func (v *VocabConfig) HasEventType(s string) bool {
	return contains(v.EventTypes, Normalize(s))
}

// Normalize maps a raw model answer onto vocabulary token form.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
